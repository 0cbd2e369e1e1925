package user

import (
	"gorm.io/gorm"

	store "github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/domain/user"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type UserRepo interface {
	GetByID(dbc dbctx.Context, userID int64) (*user.PublicUser, error)
	GetByEmail(dbc dbctx.Context, email string) (*user.WithPassword, error)
	GetByUsername(dbc dbctx.Context, username string) (*user.WithPassword, error)
	List(dbc dbctx.Context) ([]*user.PublicUser, error)
	Insert(dbc dbctx.Context, nu user.NewUser) (int64, error)
	Update(dbc dbctx.Context, userID int64, upd user.Update) (int64, error)
	DeleteDependents(dbc dbctx.Context, userID int64) error
	Delete(dbc dbctx.Context, userID int64) (int64, error)
	GetDistanceTraveled(dbc dbctx.Context, userID int64) (*float64, error)
	UpdateDistanceTraveled(dbc dbctx.Context, userID int64, distance float64) (int64, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

const (
	publicColumns = "users.user_id, users.username, users.email, users.created_at, userlevels.level_name"
	levelJoin     = "JOIN userlevels ON users.user_level_id = userlevels.level_id"
)

func (r *userRepo) publicQuery(dbc dbctx.Context, withPassword bool) *gorm.DB {
	cols := publicColumns
	if withPassword {
		cols += ", users.password"
	}
	return dbc.Resolve(r.db).Table("users").Select(cols).Joins(levelJoin)
}

func (r *userRepo) GetByID(dbc dbctx.Context, userID int64) (*user.PublicUser, error) {
	var results []*user.PublicUser
	if err := r.publicQuery(dbc, false).
		Where("users.user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "get user", "users")
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *userRepo) GetByEmail(dbc dbctx.Context, email string) (*user.WithPassword, error) {
	return r.getWithPassword(dbc, "users.email = ?", email)
}

func (r *userRepo) GetByUsername(dbc dbctx.Context, username string) (*user.WithPassword, error) {
	return r.getWithPassword(dbc, "users.username = ?", username)
}

func (r *userRepo) getWithPassword(dbc dbctx.Context, where string, arg string) (*user.WithPassword, error) {
	var results []*user.WithPassword
	if err := r.publicQuery(dbc, true).
		Where(where, arg).
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "get user", "users")
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *userRepo) List(dbc dbctx.Context) ([]*user.PublicUser, error) {
	results := []*user.PublicUser{}
	if err := r.publicQuery(dbc, false).
		Order("users.user_id").
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "list users", "users")
	}
	return results, nil
}

// Insert stores a new identity row at the default level and returns its id.
// nu.Password must already be hashed.
func (r *userRepo) Insert(dbc dbctx.Context, nu user.NewUser) (int64, error) {
	var userID int64
	if err := dbc.Resolve(r.db).Raw(
		"INSERT INTO users (username, password, email, user_level_id) VALUES (?, ?, ?, ?) RETURNING user_id",
		nu.Username, nu.Password, nu.Email, user.DefaultLevelID,
	).Scan(&userID).Error; err != nil {
		return 0, store.Classify(err, "insert user", "users")
	}
	return userID, nil
}

// Update writes only the supplied columns and reports matched rows.
func (r *userRepo) Update(dbc dbctx.Context, userID int64, upd user.Update) (int64, error) {
	cols := upd.Columns()
	if len(cols) == 0 {
		return 0, nil
	}
	res := dbc.Resolve(r.db).Table("users").Where("user_id = ?", userID).Updates(cols)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "update user", "users")
	}
	return res.RowsAffected, nil
}

type cascadeStep struct {
	table string
	query string
}

// Order matters: rows that reference a user's media go before the media.
var cascadeSteps = []cascadeStep{
	{"comments", "DELETE FROM comments WHERE user_id = ?"},
	{"likes", "DELETE FROM likes WHERE user_id = ?"},
	{"ratings", "DELETE FROM ratings WHERE user_id = ?"},
	{"comments", "DELETE FROM comments WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = ?)"},
	{"likes", "DELETE FROM likes WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = ?)"},
	{"ratings", "DELETE FROM ratings WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = ?)"},
	{"MediaItemTags", "DELETE FROM MediaItemTags WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = ?)"},
	{"mediaitems", "DELETE FROM mediaitems WHERE user_id = ?"},
}

// DeleteDependents removes the media-side rows owned by or attached to the
// user. It must run inside the caller's transaction.
func (r *userRepo) DeleteDependents(dbc dbctx.Context, userID int64) error {
	conn := dbc.Resolve(r.db)
	for i, step := range cascadeSteps {
		res := conn.Exec(step.query, userID)
		if res.Error != nil {
			return store.Classify(res.Error, "delete dependents", step.table)
		}
		r.log.Debug("cascade step", "step", i+1, "table", step.table, "rows", res.RowsAffected, "user_id", userID)
	}
	return nil
}

func (r *userRepo) Delete(dbc dbctx.Context, userID int64) (int64, error) {
	res := dbc.Resolve(r.db).Exec("DELETE FROM users WHERE user_id = ?", userID)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "delete user", "users")
	}
	return res.RowsAffected, nil
}

func (r *userRepo) GetDistanceTraveled(dbc dbctx.Context, userID int64) (*float64, error) {
	var distances []float64
	if err := dbc.Resolve(r.db).
		Table("users").
		Where("user_id = ?", userID).
		Pluck("distance_traveled", &distances).Error; err != nil {
		return nil, store.Classify(err, "get distance", "users")
	}
	if len(distances) == 0 {
		return nil, nil
	}
	d := distances[0]
	return &d, nil
}

func (r *userRepo) UpdateDistanceTraveled(dbc dbctx.Context, userID int64, distance float64) (int64, error) {
	res := dbc.Resolve(r.db).
		Table("users").
		Where("user_id = ?", userID).
		Update("distance_traveled", distance)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "update distance", "users")
	}
	return res.RowsAffected, nil
}
