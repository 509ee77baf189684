package repository

import (
	"errors"

	"ihost-backend/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户表访问层
// 查询方法在记录不存在时返回 (nil, nil)，由服务层决定如何处理
type UserRepository struct {
	orm *gorm.DB
}

func NewUserRepository(orm *gorm.DB) *UserRepository {
	return &UserRepository{orm: orm}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.orm.Create(user).Error
}

func (r *UserRepository) GetByUID(uid string) (*model.User, error) {
	var u model.User
	if err := r.orm.Where("uid = ?", uid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.orm.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) List() ([]*model.User, error) {
	var users []*model.User
	if err := r.orm.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.orm.Save(user).Error
}
