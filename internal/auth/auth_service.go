package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	autherrors "github.com/Vectus-Drive/backend/internal/auth/errors"
	"github.com/Vectus-Drive/backend/internal/customer"
	"github.com/Vectus-Drive/backend/internal/domain"
	"github.com/Vectus-Drive/backend/internal/employee"
	"github.com/Vectus-Drive/backend/internal/shared/contextutil"
	"github.com/Vectus-Drive/backend/internal/token"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AccountResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenPair, AccountResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	DeleteAccount(ctx context.Context, id string) error
	UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	customers customer.Repository
	employees employee.Repository
	ledger    token.Repository
	tokens    *TokenManager
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	customers customer.Repository,
	employees employee.Repository,
	ledger token.Repository,
	tokens *TokenManager,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		customers: customers,
		employees: employees,
		ledger:    ledger,
		tokens:    tokens,
		logger:    l,
	}
}

// Register creates the user row and its role-specific profile row in a
// single transaction. Any failure rolls the whole thing back; no orphan user
// row survives a profile conflict.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AccountResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return AccountResponse{}, autherrors.ErrInvalidRole
	}

	if role == domain.RoleCustomer {
		if _, err := s.customers.FindByEmail(ctx, req.Email); err == nil {
			return AccountResponse{}, autherrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, err
		}
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return AccountResponse{}, err
	}

	user := &User{
		UID:      uuid.NewString(),
		Username: req.Username,
		Password: hashed,
		Role:     role,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return AccountResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		s.logger.Warn("register user persist failed",
			zap.String("request_id", rid),
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return AccountResponse{}, mapRepositoryError(err)
	}

	switch role {
	case domain.RoleCustomer:
		err = s.customers.WithTx(tx).Create(ctx, &customer.Customer{
			CustomerID:  user.UID,
			Name:        req.Name,
			NIC:         req.NIC,
			Email:       req.Email,
			Image:       req.Image,
			Address:     req.Address,
			TelephoneNo: req.TelephoneNo,
		})
	case domain.RoleEmployee:
		err = s.employees.WithTx(tx).Create(ctx, &employee.Employee{
			EmployeeID:  user.UID,
			Name:        req.Name,
			NIC:         req.NIC,
			Email:       req.Email,
			Image:       req.Image,
			Address:     req.Address,
			TelephoneNo: req.TelephoneNo,
		})
	case domain.RoleAdmin:
		// admins carry no profile row
	}
	if err != nil {
		s.logger.Warn("register profile persist failed",
			zap.String("request_id", rid),
			zap.String("u_id", user.UID),
			zap.Error(err),
		)
		return AccountResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return AccountResponse{}, err
	}

	s.logger.Info("user registered",
		zap.String("request_id", rid),
		zap.String("u_id", user.UID),
		zap.String("role", role.String()),
	)

	return AccountResponse{
		UID:      user.UID,
		Username: user.Username,
		Role:     user.Role.String(),
	}, nil
}

// Login verifies credentials and issues a token pair. The refresh token's
// jti is recorded in the ledger before the pair is handed out.
func (s *service) Login(ctx context.Context, req LoginRequest) (TokenPair, AccountResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username is 403, distinguishable from a bad password.
		return TokenPair{}, AccountResponse{}, autherrors.ErrUnknownUsername
	}

	if !CheckPassword(req.Password, user.Password) {
		return TokenPair{}, AccountResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.UID, user.Role)
	if err != nil {
		return TokenPair{}, AccountResponse{}, err
	}

	if err := s.ledger.Record(ctx, pair.RefreshJTI, user.UID, pair.RefreshExpiresAt); err != nil {
		s.logger.Error("record refresh token failed", zap.String("u_id", user.UID), zap.Error(err))
		return TokenPair{}, AccountResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("u_id", user.UID))

	return pair, AccountResponse{
		UID:      user.UID,
		Username: user.Username,
		Role:     user.Role.String(),
	}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and the
// new jti recorded in one transaction, so a failure partway through cannot
// leave the client holding a token the ledger considers dead.
func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	revoked, err := s.ledger.IsRevoked(ctx, claims.JTI, claims.UserID)
	if err != nil {
		// Unknown jti is an authentication failure, not "not revoked".
		return TokenPair{}, err
	}
	if revoked {
		return TokenPair{}, autherrors.ErrTokenRevoked
	}

	pair, err := s.tokens.IssuePair(claims.UserID, claims.Role)
	if err != nil {
		return TokenPair{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return TokenPair{}, tx.Error
	}
	defer tx.Rollback()

	ledger := s.ledger.WithTx(tx)
	if err := ledger.Revoke(ctx, claims.JTI, claims.UserID); err != nil {
		return TokenPair{}, err
	}
	if err := ledger.Record(ctx, pair.RefreshJTI, claims.UserID, pair.RefreshExpiresAt); err != nil {
		s.logger.Error("record rotated token failed", zap.String("u_id", claims.UserID), zap.Error(err))
		return TokenPair{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return TokenPair{}, err
	}

	s.logger.Info("tokens rotated", zap.String("u_id", claims.UserID))

	return pair, nil
}

// Logout revokes the presented refresh token. Revoking an already-revoked
// token is a no-op, so a repeated logout still succeeds; a token the ledger
// has never seen is rejected.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return err
	}

	if err := s.ledger.Revoke(ctx, claims.JTI, claims.UserID); err != nil {
		return err
	}

	s.logger.Info("user logged out", zap.String("u_id", claims.UserID))
	return nil
}

func (s *service) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete account failed", zap.String("u_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.logger.Info("account deleted", zap.String("u_id", id))
	return nil
}

// UpdateAccount changes username and/or password. A supplied password is
// always treated as plaintext and re-hashed; callers never send hashes.
func (s *service) UpdateAccount(ctx context.Context, id string, req UpdateAccountRequest) (AccountResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			return AccountResponse{}, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Warn("update account failed", zap.String("u_id", id), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	return AccountResponse{
		UID:      user.UID,
		Username: user.Username,
		Role:     user.Role.String(),
	}, nil
}
