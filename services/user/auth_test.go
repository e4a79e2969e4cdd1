package user

import (
	"errors"
	"strings"
	"testing"

	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo keeps accounts in a map keyed by ID.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateFields(id string, fields bson.M) error {
	account, ok := r.users[id]
	if !ok {
		return errors.New("account not found")
	}
	if hash, ok := fields["tokenHash"]; ok {
		account.TokenHash = hash.(string)
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, u := range r.users {
		if u.TokenHash != "" && u.TokenHash == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) AppendNotification(id string, notification models.Notification) error {
	account, ok := r.users[id]
	if !ok {
		return errors.New("account not found")
	}
	account.Notifications = append(account.Notifications, notification)
	return nil
}

func testRegistration() RegistrationInput {
	return RegistrationInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "supersecret",
	}
}

func TestRegisterDefaultsToClientRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.Register(testRegistration())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Role != models.RoleClient {
		t.Fatalf("expected default role client, got %q", resp.Role)
	}
	if resp.Token == "" {
		t.Fatalf("expected an auth token in the response")
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	input := testRegistration()
	input.Email = "  Jane@Example.COM "
	resp, err := svc.Register(input)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", resp.Email)
	}

	stored, _ := repo.GetByEmail("jane@example.com")
	if stored == nil {
		t.Fatalf("account not stored under normalized email")
	}
	if strings.Contains(stored.PasswordHash, "supersecret") {
		t.Fatalf("password stored in plain text")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(testRegistration()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(testRegistration()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := testRegistration()
	input.Password = "short"
	if _, err := svc.Register(input); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestRegisterRejectsAdminSelfService(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := testRegistration()
	input.Role = models.RoleAdmin
	if _, err := svc.Register(input); err == nil {
		t.Fatalf("expected error for self-service admin registration")
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.Register(testRegistration()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Authenticate("jane@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a fresh token")
	}

	if _, err := svc.Authenticate("jane@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRevokeAuthTokenClearsHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(testRegistration())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.RevokeAuthToken(resp.ID); err != nil {
		t.Fatalf("RevokeAuthToken failed: %v", err)
	}
	stored, _ := repo.GetByID(resp.ID)
	if stored.TokenHash != "" {
		t.Fatalf("expected cleared token hash, got %q", stored.TokenHash)
	}
}
