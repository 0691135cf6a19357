package usecase

import (
	"context"

	"catalog-service/internal/core/port"
)

// resolveCover выбирает обложку объекта: первое включенное изображение,
// иначе первое в порядке хранения, иначе nil (обложки нет).
// Это отдельный поход в хранилище на каждый объект.
func resolveCover(ctx context.Context, images port.PropertyImageRepositoryPort, propertyID string) (*string, error) {
	imgs, err := images.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	for _, img := range imgs {
		if img.Enabled {
			file := img.File
			return &file, nil
		}
	}
	if len(imgs) > 0 {
		file := imgs[0].File
		return &file, nil
	}
	return nil, nil
}
