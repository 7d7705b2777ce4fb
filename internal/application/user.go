package app

import (
	"context"
	"errors"

	"vision-report/internal/domain/entity"
	"vision-report/internal/domain/port"
)

// ErrBusy: у пользователя уже идёт обработка.
var ErrBusy = errors.New("previous image is still being processed")

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) BeginUpload(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingImage)
}

// StartProcessing переводит пользователя в обработку, если он не занят.
func (s *UserService) StartProcessing(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if user.IsBusy() {
		return nil, ErrBusy
	}
	return s.SetState(ctx, userID, chatID, entity.StateProcessing)
}

// Finish возвращает пользователя в меню и запоминает отчёт, если он есть.
func (s *UserService) Finish(ctx context.Context, userID, chatID int64, documentPath string) (*entity.User, error) {
	user, err := s.SetState(ctx, userID, chatID, entity.StateMainMenu)
	if err != nil {
		return nil, err
	}
	if documentPath == "" {
		return user, nil
	}
	if err := s.repo.SetLastReport(ctx, userID, documentPath); err != nil {
		return nil, err
	}
	user.LastReport = documentPath
	return user, nil
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
