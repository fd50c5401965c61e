package service

import (
	"errors"

	"vidya_backend/internal/config"
	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo       *repository.UserRepository
	CurriculumRepo *repository.CurriculumRepository
	Cfg            *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, curriculumRepo *repository.CurriculumRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:       userRepo,
		CurriculumRepo: curriculumRepo,
		Cfg:            cfg,
	}
}

// Register creates a new account. A board and class selection may be given
// at signup; if either is present both must be, and the class must belong
// to the board.
func (s *AuthService) Register(email, password string, boardID, classID *string) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.validateSelection(boardID, classID); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:           email,
		Password:        string(hashedPassword),
		SelectedBoardID: boardID,
		SelectedClassID: classID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) IssueToken(user *model.User) (string, error) {
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UpdateSelection re-points the user at a board and class pair.
func (s *AuthService) UpdateSelection(userID string, boardID, classID string) (*model.User, error) {
	if boardID == "" || classID == "" {
		return nil, util.ErrInvalidSelection
	}
	if err := s.validateSelection(&boardID, &classID); err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateSelection(userID, &boardID, &classID); err != nil {
		return nil, err
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) validateSelection(boardID, classID *string) error {
	if boardID == nil && classID == nil {
		return nil
	}
	if boardID == nil || classID == nil {
		return util.ErrInvalidSelection
	}
	if _, err := s.CurriculumRepo.FindBoard(*boardID); err != nil {
		return util.ErrInvalidSelection
	}
	if _, err := s.CurriculumRepo.FindClassInBoard(*classID, *boardID); err != nil {
		return util.ErrInvalidSelection
	}
	return nil
}
