package domain

import "time"

// ProductImage — изображение товара с публичным URL.
// Первичным (IsPrimary) должно быть не более одного изображения на товар,
// хранилище это не контролирует.
type ProductImage struct {
	ID        int64
	ProductID int64
	ImageURL  string
	IsPrimary bool
	CreatedAt time.Time
}

func NewProductImage(productID int64, imageURL string, isPrimary bool) *ProductImage {
	return &ProductImage{
		ProductID: productID,
		ImageURL:  imageURL,
		IsPrimary: isPrimary,
	}
}

// Image описывает бинарный объект изображения, который хранится в S3.
type Image struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size        *int64
	ContentType *string // Example: "image/jpeg"
}

func NewImage(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *Image {
	return &Image{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
