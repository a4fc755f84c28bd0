package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// DefaultSuperAdminPassword is used when SUPERADMIN_PASSWORD is unset.
const DefaultSuperAdminPassword = "Admin@123"

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UserService owns accounts: registration, login, profile and deletion.
type UserService struct {
	gw       *Gateway
	sessions *Sessions
	hasher   utils.PasswordHasher
	clock    clock
	log      *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func (s *UserService) validateRegistration(in RegisterInput) error {
	var errs utils.ValidationErrors

	switch {
	case strings.TrimSpace(in.Name) == "":
		errs.Add("name", "Name is required")
	case !utils.IsValidUsername(in.Name):
		errs.Add("name", "Name must start with a letter (not a number or special character)")
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		errs.Add("email", "Email is required")
	case !utils.IsValidEmail(utils.NormalizeEmail(in.Email)):
		errs.Add("email", "Please enter a valid email address")
	}

	if strings.TrimSpace(in.Password) == "" {
		errs.Add("password", "Password is required")
	}

	switch {
	case strings.TrimSpace(in.ConfirmPassword) == "":
		errs.Add("confirmPassword", "Please confirm your password")
	case !utils.DoPasswordsMatch(in.Password, in.ConfirmPassword):
		errs.Add("confirmPassword", "Passwords do not match")
	}

	return errs.Err()
}

// Register creates an account, signs it in and seeds sample data.
// The returned strength is advisory; weak passwords are accepted.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, utils.PasswordStrength, error) {
	strength := utils.CheckPasswordStrength(in.Password)
	if err := s.validateRegistration(in); err != nil {
		return nil, "", strength, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", strength, fmt.Errorf("hash password: %w", err)
	}

	email := utils.NormalizeEmail(in.Email)
	user := models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         roleFor(email),
		CreatedAt:    s.clock.Now(),
	}

	unlock := s.gw.Lock(UsersKey)
	users := s.gw.Users(ctx)
	if findByEmail(users, email) != -1 {
		unlock()
		return nil, "", strength, ErrDuplicateEmail
	}
	s.gw.SaveUsers(ctx, append(users, user))
	unlock()

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.discard(ctx, user.ID)
		return nil, "", strength, err
	}

	seedUser(ctx, s.gw, user.ID, s.clock.Now())

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return &user, token, strength, nil
}

// Login checks credentials and opens a fresh session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	users := s.gw.Users(ctx)
	i := findByEmail(users, utils.NormalizeEmail(email))
	if i == -1 {
		// Spend the same hashing time as a real check.
		_, _ = s.hasher.Verify(password, s.dummy())
		return nil, "", ErrInvalidCredentials
	}

	user := users[i]
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash is unusable")
		return nil, "", ErrInvalidCredentials
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) Logout(ctx context.Context, token string) {
	s.sessions.Invalidate(ctx, token)
}

// Current resolves token to the live user record.
func (s *UserService) Current(ctx context.Context, token string) (*models.User, bool) {
	userID, ok := s.sessions.Resolve(ctx, token)
	if !ok {
		return nil, false
	}
	return s.Get(ctx, userID)
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, bool) {
	users := s.gw.Users(ctx)
	i := findByID(users, userID)
	if i == -1 {
		return nil, false
	}
	return &users[i], true
}

// UpdateProfile changes name and email. Nothing else on the record moves.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error) {
	var errs utils.ValidationErrors
	switch {
	case strings.TrimSpace(name) == "":
		errs.Add("name", "Name is required")
	case !utils.IsValidUsername(name):
		errs.Add("name", "Name must start with a letter (not a number or special character)")
	}
	email = utils.NormalizeEmail(email)
	switch {
	case email == "":
		errs.Add("email", "Email is required")
	case !utils.IsValidEmail(email):
		errs.Add("email", "Please enter a valid email address")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	unlock := s.gw.Lock(UsersKey)
	users := s.gw.Users(ctx)
	i := findByID(users, userID)
	if i == -1 {
		unlock()
		return nil, ErrNotFound
	}
	if users[i].IsSuperAdmin() && email != utils.SuperAdminEmail {
		unlock()
		return nil, &utils.ValidationError{Field: "email", Message: "The superadmin email cannot be changed"}
	}
	if j := findByEmail(users, email); j != -1 && j != i {
		unlock()
		return nil, ErrDuplicateEmail
	}
	users[i].Name = strings.TrimSpace(name)
	users[i].Email = email
	updated := users[i]
	s.gw.SaveUsers(ctx, users)
	unlock()

	s.sessions.Notify(models.SessionEventProfileUpdated, userID)
	return &updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next, confirm string) error {
	var errs utils.ValidationErrors
	if current == "" {
		errs.Add("currentPassword", "Current password is required")
	}
	if strings.TrimSpace(next) == "" {
		errs.Add("newPassword", "Password is required")
	}
	switch {
	case strings.TrimSpace(confirm) == "":
		errs.Add("confirmPassword", "Please confirm your password")
	case !utils.DoPasswordsMatch(next, confirm):
		errs.Add("confirmPassword", "Passwords do not match")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	user, ok := s.Get(ctx, userID)
	if !ok {
		return ErrNotFound
	}
	if match, err := s.hasher.Verify(current, user.PasswordHash); err != nil || !match {
		return &utils.ValidationError{Field: "currentPassword", Message: "Current password is incorrect"}
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	unlock := s.gw.Lock(UsersKey)
	defer unlock()
	users := s.gw.Users(ctx)
	i := findByID(users, userID)
	if i == -1 {
		return ErrNotFound
	}
	users[i].PasswordHash = hash
	s.gw.SaveUsers(ctx, users)
	return nil
}

// DeleteAccount removes the caller's own account and everything it owns.
// The superadmin account cannot be deleted this way.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	user, ok := s.Get(ctx, userID)
	if !ok {
		return ErrNotFound
	}
	if user.IsSuperAdmin() {
		return ErrForbidden
	}
	return s.remove(ctx, userID)
}

// discard drops a record whose registration did not complete.
func (s *UserService) discard(ctx context.Context, userID string) {
	unlock := s.gw.Lock(UsersKey)
	defer unlock()
	users := s.gw.Users(ctx)
	if i := findByID(users, userID); i != -1 {
		s.gw.SaveUsers(ctx, append(users[:i], users[i+1:]...))
	}
}

// remove drops the user record, entries, moods and session, then tells subscribers.
func (s *UserService) remove(ctx context.Context, userID string) error {
	unlock := s.gw.Lock(UsersKey)
	users := s.gw.Users(ctx)
	i := findByID(users, userID)
	if i == -1 {
		unlock()
		return ErrNotFound
	}
	s.gw.SaveUsers(ctx, append(users[:i], users[i+1:]...))
	unlock()

	unlockEntries := s.gw.Lock(journalKey(userID))
	unlockMood := s.gw.Lock(moodKey(userID))
	s.gw.Purge(ctx, userID)
	unlockMood()
	unlockEntries()

	s.sessions.InvalidateUser(ctx, userID)
	s.sessions.Notify(models.SessionEventAccountDeleted, userID)

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

// EnsureSuperAdmin provisions the superadmin account when it does not exist.
// It reports whether an account was created.
func (s *UserService) EnsureSuperAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		password = DefaultSuperAdminPassword
	}

	unlock := s.gw.Lock(UsersKey)
	defer unlock()

	users := s.gw.Users(ctx)
	for _, u := range users {
		if u.Email == utils.SuperAdminEmail {
			return false, nil
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash superadmin password: %w", err)
	}

	now := s.clock.Now()
	admin := models.User{
		ID:           "admin-" + strconv.FormatInt(now.UnixMilli(), 10),
		Name:         "Super Admin",
		Email:        utils.SuperAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		CreatedAt:    now,
	}
	s.gw.SaveUsers(ctx, append(users, admin))

	s.log.Info().Str("user_id", admin.ID).Msg("superadmin provisioned")
	return true, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.log.Error().Err(err).Msg("computing dummy hash failed")
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func roleFor(email string) string {
	if utils.IsSuperAdmin(email) {
		return models.RoleSuperAdmin
	}
	return models.RoleUser
}

func findByEmail(users []models.User, email string) int {
	for i, u := range users {
		if strings.EqualFold(utils.NormalizeEmail(u.Email), email) {
			return i
		}
	}
	return -1
}

func findByID(users []models.User, id string) int {
	if id == "" {
		return -1
	}
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
