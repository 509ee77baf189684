package service

import (
	"fmt"
	"strings"

	"ihost-backend/internal/model"
)

const (
	usernameMinLen = 4
	usernameMaxLen = 12
)

// UserService 用户资料服务
// 身份（uid、令牌）由外部身份提供方负责，这里只管理资料文档
type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	PhotoURL  string
}

// Register 注册用户资料
// uid 来自已验证的令牌，同一uid只允许注册一次
func (s *UserService) Register(uid string, req RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return nil, fmt.Errorf("%w: username must be %d-%d characters", ErrValidation, usernameMinLen, usernameMaxLen)
	}

	existing, err := s.repo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: profile already exists for uid %s", ErrConflict, uid)
	}

	taken, err := s.repo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
	}

	user := &model.User{
		UID:       uid,
		Email:     strings.TrimSpace(req.Email),
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhotoURL:  req.PhotoURL,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUID 根据uid查询用户资料
func (s *UserService) GetByUID(uid string) (*model.User, error) {
	user, err := s.repo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	}
	return user, nil
}

// List 列出全部用户
func (s *UserService) List() ([]*model.User, error) {
	return s.repo.List()
}

// UserPatch 资料更新请求，nil字段表示不修改
type UserPatch struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	PhotoURL  *string
}

// Update 更新用户资料，只允许本人操作
func (s *UserService) Update(uid, callerUID string, patch UserPatch) (*model.User, error) {
	if uid != callerUID {
		return nil, fmt.Errorf("%w: can only update own profile", ErrForbidden)
	}

	user, err := s.repo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	}

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if len(username) < usernameMinLen || len(username) > usernameMaxLen {
			return nil, fmt.Errorf("%w: username must be %d-%d characters", ErrValidation, usernameMinLen, usernameMaxLen)
		}
		if username != user.Username {
			taken, err := s.repo.ExistsByUsername(username)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("%w: username %s is taken", ErrConflict, username)
			}
		}
		user.Username = username
	}
	if patch.Email != nil {
		user.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.PhotoURL != nil {
		user.PhotoURL = *patch.PhotoURL
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsUsernameAvailable 检查用户名是否可用
// 长度不在[4,12]内直接返回false，不查询存储
func (s *UserService) IsUsernameAvailable(username string) (bool, error) {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return false, nil
	}
	taken, err := s.repo.ExistsByUsername(username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
