package repository

import (
	"errors"

	"ihost-backend/internal/model"

	"gorm.io/gorm"
)

// ImageRepository 图片元数据表访问层
type ImageRepository struct {
	orm *gorm.DB
}

func NewImageRepository(orm *gorm.DB) *ImageRepository {
	return &ImageRepository{orm: orm}
}

func (r *ImageRepository) Create(img *model.Image) error {
	return r.orm.Create(img).Error
}

func (r *ImageRepository) GetByID(id uint) (*model.Image, error) {
	var img model.Image
	if err := r.orm.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) ListByEvent(eventID uint) ([]*model.Image, error) {
	var imgs []*model.Image
	if err := r.orm.Where("event_id = ?", eventID).Order("uploaded_at DESC").Find(&imgs).Error; err != nil {
		return nil, err
	}
	return imgs, nil
}

func (r *ImageRepository) Delete(id uint) error {
	return r.orm.Delete(&model.Image{}, id).Error
}
