package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"ihost-backend/internal/model"

	"go.uber.org/zap"
)

// ImageService 图片服务
// 图片本体在对象存储，元数据在数据库
type ImageService struct {
	imgRepo   ImageRepo
	eventRepo EventRepo
	userRepo  UserRepo
	storage   ObjectStorage
}

func NewImageService(imgRepo ImageRepo, eventRepo EventRepo, userRepo UserRepo, storage ObjectStorage) *ImageService {
	return &ImageService{imgRepo: imgRepo, eventRepo: eventRepo, userRepo: userRepo, storage: storage}
}

// UploadEventImage 上传活动图片
func (s *ImageService) UploadEventImage(ctx context.Context, eventID uint, uploaderUID, filename string, reader io.Reader, size int64, contentType string) (*model.Image, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}

	objectName := fmt.Sprintf("events/%d/%d%s", eventID, time.Now().UnixNano(), filepath.Ext(filename))
	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	img := &model.Image{
		EventID:    eventID,
		UploaderID: uploaderUID,
		ObjectName: objectName,
		URL:        url,
		UploadedAt: time.Now(),
	}
	if err := s.imgRepo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

// UploadProfileImage 上传用户头像并更新资料中的头像URL
func (s *ImageService) UploadProfileImage(ctx context.Context, uid, filename string, reader io.Reader, size int64, contentType string) (*model.Image, error) {
	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	}

	objectName := fmt.Sprintf("users/%s/%d%s", uid, time.Now().UnixNano(), filepath.Ext(filename))
	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	img := &model.Image{
		UploaderID: uid,
		ObjectName: objectName,
		URL:        url,
		UploadedAt: time.Now(),
	}
	if err := s.imgRepo.Create(img); err != nil {
		return nil, err
	}

	user.PhotoURL = url
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return img, nil
}

// ListByEvent 列出活动的全部图片
func (s *ImageService) ListByEvent(eventID uint) ([]*model.Image, error) {
	return s.imgRepo.ListByEvent(eventID)
}

// Delete 删除图片，只允许上传者操作
// 先删元数据，再尽力删除对象本体（失败只记日志）
func (s *ImageService) Delete(ctx context.Context, imageID uint, callerUID string) error {
	img, err := s.imgRepo.GetByID(imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("%w: image %d", ErrNotFound, imageID)
	}
	if img.UploaderID != callerUID {
		return fmt.Errorf("%w: only the uploader can delete the image", ErrForbidden)
	}

	if err := s.imgRepo.Delete(imageID); err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, img.ObjectName); err != nil {
		zap.L().Warn("删除存储对象失败",
			zap.Uint("image_id", imageID),
			zap.String("object_name", img.ObjectName),
			zap.Error(err),
		)
	}
	return nil
}
