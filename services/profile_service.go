package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountIn is the nested account payload on composite registration.
type AccountIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AccountPatch is the optional nested account payload on profile update.
// Supplied fields overwrite; the password is re-hashed.
type AccountPatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// AccountView is what an account looks like on the wire: no password, ever.
type AccountView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewAccountView(u *entity.User) AccountView {
	return AccountView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// accountOwner is a profile record that owns exactly one account.
type accountOwner interface {
	AccountID() uint
	SetAccountID(uint)
}

// ProfileService is the shared owns-one-account engine behind both the
// customer and restaurant services. A profile and its nested account are
// created or updated as one transaction: if the nested account part fails
// validation, nothing is written.
type ProfileService[P accountOwner] struct {
	DB    *gorm.DB
	Users *repository.UserRepository
	Role  string
}

func NewProfileService[P accountOwner](db *gorm.DB, users *repository.UserRepository, role string) *ProfileService[P] {
	return &ProfileService[P]{DB: db, Users: users, Role: role}
}

// Register creates the account and the profile in one transaction.
// The profile must arrive with its own fields already set; the account id
// is filled in here.
func (s *ProfileService[P]) Register(p P, in AccountIn) error {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" {
		return apperr.Validation("user.username", "this field is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if taken, err := s.Users.UsernameTaken(tx, username, 0); err != nil {
			return err
		} else if taken {
			return apperr.Validation("user.username", "username already taken")
		}
		if taken, err := s.Users.EmailTaken(tx, email, 0); err != nil {
			return err
		} else if taken {
			return apperr.Validation("user.email", "email already registered")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		u := &entity.User{
			Username: username,
			Email:    email,
			Password: string(hashed),
			Role:     s.Role,
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		p.SetAccountID(u.ID)
		return tx.Omit(clause.Associations).Create(p).Error
	})
}

// Update applies an optional nested account patch and then the profile's
// own field changes (apply is the caller's allow-listed overwrite func),
// all in one transaction. A rejected account patch aborts the whole update.
func (s *ProfileService[P]) Update(p P, patch *AccountPatch, apply func()) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if patch != nil {
			if err := s.applyAccountPatch(tx, p.AccountID(), patch); err != nil {
				return err
			}
		}
		apply()
		return tx.Omit(clause.Associations).Save(p).Error
	})
}

func (s *ProfileService[P]) applyAccountPatch(tx *gorm.DB, accountID uint, patch *AccountPatch) error {
	updates := map[string]any{}

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return apperr.Validation("user.username", "must not be blank")
		}
		taken, err := s.Users.UsernameTaken(tx, username, accountID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Validation("user.username", "username already taken")
		}
		updates["username"] = username
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email == "" {
			return apperr.Validation("user.email", "must not be blank")
		}
		taken, err := s.Users.EmailTaken(tx, email, accountID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Validation("user.email", "email already registered")
		}
		updates["email"] = email
	}

	if patch.Password != nil {
		if len(*patch.Password) < 6 {
			return apperr.Validation("user.password", "must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) == 0 {
		return nil
	}
	return s.Users.Update(tx, accountID, updates)
}
