package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/errs"
	"github.com/pageza/recipebox/backend/internal/model"
)

// PasswordCost is the bcrypt work factor used at signup.
const PasswordCost = 10

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Signup hashes the password and inserts the account.
func (s *AccountService) Signup(ctx context.Context, username, email, password string) (*model.Account, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", errs.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %s", errs.ErrAlreadyExists, email)
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return account, nil
}

// Login returns the account whose email and password match.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	var accounts []model.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if len(accounts) == 0 {
		return nil, errs.ErrUserNotFound
	}

	account := accounts[0]
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	return &account, nil
}
