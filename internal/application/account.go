package application

import (
	"errors"
	"time"

	"github.com/vendorlynx/vendorlynx-go/internal/api/middleware"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/account"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService struct {
	Repos *repository.Repos
}

func NewAccountService(repos *repository.Repos) *AccountService {
	return &AccountService{Repos: repos}
}

func (s *AccountService) Register(input account.RegisterDTO) error {
	_, err := s.Repos.Account.GetAccountByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	acc := account.Account{
		Username:    input.Username,
		Password:    string(hashed),
		Email:       input.Email,
		CompanyName: input.CompanyName,
		Role:        types.Role(input.Role),
	}
	return s.Repos.Account.CreateAccount(&acc)
}

func (s *AccountService) Login(username, password string) (account.Account, string, error) {
	acc, err := s.Repos.Account.GetAccountByUsername(username)
	if err != nil {
		return account.Account{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		return account.Account{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(acc.ID, acc.Username, acc.Role, 24*time.Hour)
	if err != nil {
		return account.Account{}, "", err
	}
	return acc, token, nil
}

func (s *AccountService) GetAccount(id uint) (account.Account, error) {
	acc, err := s.Repos.Account.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, ErrAccountNotFound
		}
		return account.Account{}, err
	}
	return acc, nil
}

func (s *AccountService) UpdateAccount(id uint, input account.UpdateAccountDTO) (account.Account, error) {
	acc, err := s.Repos.Account.GetAccountByID(id)
	if err != nil {
		return account.Account{}, ErrAccountNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return account.Account{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(*input.OldPassword)); err != nil {
			return account.Account{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return account.Account{}, ErrPasswordHashFailure
		}
		acc.Password = string(hashed)
	}
	if input.Email != nil {
		acc.Email = *input.Email
	}
	if input.CompanyName != nil {
		acc.CompanyName = *input.CompanyName
	}

	if err := s.Repos.Account.SaveAccount(&acc); err != nil {
		return account.Account{}, err
	}
	return acc, nil
}
