package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aslanbek/weatherdesk/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	CreateUser(username, password string, isAdmin bool) (models.User, error)
	UpdateUser(id, username, password string, isAdmin bool) (models.User, error)
	SoftDeleteUser(id string) error
	ListActiveUsers() ([]models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService provides business logic for user management. Deleting a user
// only stamps deletion_date; the row and the user's lookup history survive.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = "id, username, password_hash, is_admin, deletion_date, update_date, created_at"

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin,
		&user.DeletionDate, &user.UpdateDate, &user.CreatedAt)
	return user, err
}

// GetUserByID retrieves a single user by their ID, soft-deleted or not.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with ID %s not found", id)
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. Usernames are
// unique; a duplicate surfaces as a constraint error.
func (s *UserService) CreateUser(username, password string, isAdmin bool) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("username and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsAdmin:      isAdmin,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, password_hash, is_admin) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Username, user.PasswordHash, user.IsAdmin)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateUser overwrites a user's username and admin flag, and the password
// when a non-empty one is supplied. The whole row is written in one UPDATE,
// so concurrent edits resolve as last write wins with no field merge.
func (s *UserService) UpdateUser(id, username, password string, isAdmin bool) (models.User, error) {
	var res sql.Result
	var err error
	if password != "" {
		var hashed []byte
		hashed, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		res, err = s.db.Exec(
			"UPDATE users SET username = ?, password_hash = ?, is_admin = ?, update_date = CURRENT_TIMESTAMP WHERE id = ?",
			username, string(hashed), isAdmin, id)
	} else {
		res, err = s.db.Exec(
			"UPDATE users SET username = ?, is_admin = ?, update_date = CURRENT_TIMESTAMP WHERE id = ?",
			username, isAdmin, id)
	}
	if err != nil {
		return models.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.User{}, fmt.Errorf("user with ID %s not found", id)
	}
	return s.GetUserByID(id)
}

// SoftDeleteUser marks a user deleted by stamping deletion_date. The user's
// historical lookups stay in place.
func (s *UserService) SoftDeleteUser(id string) error {
	res, err := s.db.Exec("UPDATE users SET deletion_date = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user with ID %s not found", id)
	}
	return nil
}

// ListActiveUsers returns all users that have not been soft-deleted.
func (s *UserService) ListActiveUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT " + userColumns + " FROM users WHERE deletion_date IS NULL ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = ""
		users = append(users, user)
	}
	return users, rows.Err()
}

// Authenticate verifies a user's credentials. Soft-deleted accounts cannot
// authenticate.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ? AND deletion_date IS NULL", username)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("authentication failed: user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("authentication failed: invalid password")
	}

	user.PasswordHash = ""
	return user, nil
}
