package repository

import (
	"context"
	"fmt"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// UserRepo implements users.UserRepo over the record store
type UserRepo struct {
	store jsondb.Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store jsondb.Store) *UserRepo {
	return &UserRepo{store: store}
}

// CreateUser stores a new user and fills in its id and createdAt
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	rec, err := jsondb.Encode(user)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(ctx, jsondb.Users, rec)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return jsondb.Decode(stored, user)
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, jsondb.Matcher{"id": id})
}

// GetUserByMobile retrieves a user by normalized mobile number
func (r *UserRepo) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return r.findOne(ctx, jsondb.Matcher{"mobile": mobile})
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, jsondb.Matcher{"email": email})
}

// UpdateUser merges fields into the user. It returns nil, nil for an unknown id.
func (r *UserRepo) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	rec, err := r.store.Update(ctx, jsondb.Users, id, jsondb.Record(fields))
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	var user models.User
	if err := jsondb.Decode(rec, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user in registration order
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	records, err := r.store.Get(ctx, jsondb.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return jsondb.DecodeAll[models.User](records)
}

func (r *UserRepo) findOne(ctx context.Context, matcher jsondb.Matcher) (*models.User, error) {
	rec, err := r.store.FindOne(ctx, jsondb.Users, matcher)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	var user models.User
	if err := jsondb.Decode(rec, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
