package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/questline-backend/internal/data/repos"
	"github.com/yungbote/questline-backend/internal/domain/user"
	"github.com/yungbote/questline-backend/internal/platform/apierr"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
	"github.com/yungbote/questline-backend/internal/platform/password"
)

const (
	msgUserNotFound  = "User not found"
	msgUserConflict  = "Username or email already in use"
	msgNothingToSave = "No fields to update"
)

type UserService interface {
	GetByID(ctx context.Context, userID int64) (*user.PublicUser, error)
	GetByEmail(ctx context.Context, email string) (*user.WithPassword, error)
	GetByUsername(ctx context.Context, username string) (*user.WithPassword, error)
	List(ctx context.Context) ([]*user.PublicUser, error)
	Create(ctx context.Context, nu user.NewUser) (*user.PublicUser, error)
	Update(ctx context.Context, userID int64, upd user.Update) (*user.PublicUser, error)
	Delete(ctx context.Context, userID int64) (*user.DeleteResult, error)
	GetDistanceTraveled(ctx context.Context, userID int64) (float64, error)
	UpdateDistanceTraveled(ctx context.Context, userID int64, distance float64) error
}

// QuestStores pairs one variant's catalog and progress repos.
type QuestStores struct {
	Catalog  repos.CatalogRepo
	Progress repos.ProgressRepo
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	hasher   password.Hasher
	quests   []QuestStores
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, hasher password.Hasher, quests []QuestStores) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		hasher:   hasher,
		quests:   quests,
	}
}

func (us *userService) GetByID(ctx context.Context, userID int64) (*user.PublicUser, error) {
	u, err := us.userRepo.GetByID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, internalErr(us.log, "get user", err)
	}
	if u == nil {
		return nil, apierr.NotFound(msgUserNotFound)
	}
	return u, nil
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*user.WithPassword, error) {
	u, err := us.userRepo.GetByEmail(dbctx.Context{Ctx: ctx}, strings.TrimSpace(email))
	if err != nil {
		return nil, internalErr(us.log, "get user by email", err)
	}
	if u == nil {
		return nil, apierr.NotFound(msgUserNotFound)
	}
	return u, nil
}

func (us *userService) GetByUsername(ctx context.Context, username string) (*user.WithPassword, error) {
	u, err := us.userRepo.GetByUsername(dbctx.Context{Ctx: ctx}, strings.TrimSpace(username))
	if err != nil {
		return nil, internalErr(us.log, "get user by username", err)
	}
	if u == nil {
		return nil, apierr.NotFound(msgUserNotFound)
	}
	return u, nil
}

func (us *userService) List(ctx context.Context) ([]*user.PublicUser, error) {
	users, err := us.userRepo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, internalErr(us.log, "list users", err)
	}
	if users == nil {
		users = []*user.PublicUser{}
	}
	return users, nil
}

// Create registers a user and gives them one unclaimed progress row per quest
// in every variant seeded on registration. Either all of it lands or none.
func (us *userService) Create(ctx context.Context, nu user.NewUser) (*user.PublicUser, error) {
	nu.Username = strings.TrimSpace(nu.Username)
	nu.Email = strings.TrimSpace(nu.Email)
	if nu.Username == "" || nu.Email == "" || nu.Password == "" {
		return nil, apierr.BadRequest("username, password and email are required")
	}
	hash, err := us.hasher.Hash(nu.Password)
	if err != nil {
		return nil, internalErr(us.log, "hash password", err)
	}
	nu.Password = hash

	var created *user.PublicUser
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		userID, err := us.userRepo.Insert(dbc, nu)
		if err != nil {
			return err
		}
		for _, qs := range us.quests {
			if !qs.Catalog.Variant().SeedOnRegister {
				continue
			}
			ids, err := qs.Catalog.ListIDs(dbc)
			if err != nil {
				return err
			}
			if err := qs.Progress.EnrollMany(dbc, userID, ids); err != nil {
				return err
			}
			us.log.Debug("seeded quests", "user_id", userID, "variant", qs.Catalog.Variant().Name, "count", len(ids))
		}
		u, err := us.userRepo.GetByID(dbc, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return errors.New("created user not readable")
		}
		created = u
		return nil
	}); err != nil {
		return nil, classifyWrite(us.log, "create user", err, msgUserConflict, "")
	}
	us.log.Info("user created", "user_id", created.UserID)
	return created, nil
}

func (us *userService) Update(ctx context.Context, userID int64, upd user.Update) (*user.PublicUser, error) {
	if upd.IsEmpty() {
		return nil, apierr.BadRequest(msgNothingToSave)
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, apierr.BadRequest("password must not be empty")
		}
		hash, err := us.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, internalErr(us.log, "hash password", err)
		}
		upd.Password = &hash
	}

	var updated *user.PublicUser
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		n, err := us.userRepo.Update(dbc, userID, upd)
		if err != nil {
			return err
		}
		if n == 0 {
			return apierr.NotFound(msgUserNotFound)
		}
		u, err := us.userRepo.GetByID(dbc, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apierr.NotFound(msgUserNotFound)
		}
		updated = u
		return nil
	}); err != nil {
		return nil, classifyWrite(us.log, "update user", err, msgUserConflict, "")
	}
	return updated, nil
}

// Delete removes the user and everything that references them in one
// transaction. A missing user still commits (nothing was deleted) and is
// reported as not found.
func (us *userService) Delete(ctx context.Context, userID int64) (*user.DeleteResult, error) {
	var affected int64
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := us.userRepo.DeleteDependents(dbc, userID); err != nil {
			return err
		}
		for _, qs := range us.quests {
			if _, err := qs.Progress.DeleteForUser(dbc, userID); err != nil {
				return err
			}
		}
		n, err := us.userRepo.Delete(dbc, userID)
		if err != nil {
			return err
		}
		affected = n
		return nil
	}); err != nil {
		return nil, internalErr(us.log, "delete user", err)
	}
	if affected == 0 {
		return nil, apierr.NotFound(msgUserNotFound)
	}
	us.log.Info("user deleted", "user_id", userID)
	return &user.DeleteResult{Message: "User deleted", User: user.DeletedRef{UserID: userID}}, nil
}

func (us *userService) GetDistanceTraveled(ctx context.Context, userID int64) (float64, error) {
	d, err := us.userRepo.GetDistanceTraveled(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return 0, internalErr(us.log, "get distance", err)
	}
	if d == nil {
		return 0, apierr.NotFound(msgUserNotFound)
	}
	return *d, nil
}

func (us *userService) UpdateDistanceTraveled(ctx context.Context, userID int64, distance float64) error {
	if distance < 0 {
		return apierr.BadRequest("distance must not be negative")
	}
	n, err := us.userRepo.UpdateDistanceTraveled(dbctx.Context{Ctx: ctx}, userID, distance)
	if err != nil {
		return internalErr(us.log, "update distance", err)
	}
	if n == 0 {
		return apierr.NotFound(msgUserNotFound)
	}
	return nil
}
