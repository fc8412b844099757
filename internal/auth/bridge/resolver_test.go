package bridge

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"
	"github.com/Lee0514/travel-app-backend/internal/auth/provider/line"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthClient emulates the provider's account store: one account per
// email, sign-up rejected once the email exists.
type fakeAuthClient struct {
	mu       sync.Mutex
	byEmail  map[string]*accounts.Account
	nextID   int
	sessions bool // whether new accounts get a session token

	signIns int
	signUps int
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		byEmail:  map[string]*accounts.Account{},
		sessions: true,
	}
}

func (f *fakeAuthClient) SignIn(ctx context.Context, email, password string) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signIns++

	acc, ok := f.byEmail[email]
	if !ok {
		return nil, accounts.ErrInvalidCredentials
	}

	out := *acc
	if f.sessions {
		out.AccessToken = "token-" + acc.ID
	}
	return &out, nil
}

func (f *fakeAuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*accounts.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUps++

	if _, ok := f.byEmail[email]; ok {
		return nil, accounts.ErrAlreadyRegistered
	}

	f.nextID++
	acc := &accounts.Account{
		ID:    "acc-" + strconv.Itoa(f.nextID),
		Email: email,
	}
	f.byEmail[email] = acc

	out := *acc
	if f.sessions {
		out.AccessToken = "token-" + acc.ID
	}
	return &out, nil
}

func (f *fakeAuthClient) GetUser(ctx context.Context, token string) (*accounts.User, error) {
	return nil, errors.New("not implemented")
}

func testProfile(userID string) *line.Profile {
	return &line.Profile{UserID: userID, DisplayName: "Traveler"}
}

func mustDerive(t *testing.T, userID string) Credential {
	t.Helper()
	cred, err := Derive(userID, "server-secret")
	require.NoError(t, err)
	return cred
}

func TestResolveFirstLoginCreatesAccount(t *testing.T) {
	client := newFakeAuthClient()
	r := NewResolver(client)

	cred := mustDerive(t, "U123")
	acc, err := r.Resolve(context.Background(), cred, testProfile("U123"))
	require.NoError(t, err)

	assert.NotEmpty(t, acc.ID)
	assert.NotEmpty(t, acc.AccessToken)
	assert.Equal(t, 1, client.signIns)
	assert.Equal(t, 1, client.signUps)
}

func TestResolveReturningLoginSignsInDirectly(t *testing.T) {
	client := newFakeAuthClient()
	r := NewResolver(client)

	cred := mustDerive(t, "U123")
	first, err := r.Resolve(context.Background(), cred, testProfile("U123"))
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), cred, testProfile("U123"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same provider user must never map to two accounts")
	assert.Equal(t, 1, client.signUps, "no second account created")
}

func TestResolveCompensatesLostCreateRace(t *testing.T) {
	client := newFakeAuthClient()
	r := NewResolver(client)

	cred := mustDerive(t, "U456")

	// another callback created the account between our sign-in attempt
	// and our sign-up attempt
	winner, err := client.SignUp(context.Background(), cred.LoginEmail, cred.LoginSecret, nil)
	require.NoError(t, err)

	acc, err := r.Resolve(context.Background(), cred, testProfile("U456"))
	require.NoError(t, err)

	assert.Equal(t, winner.ID, acc.ID, "loser of the race must resolve to the winner's account")
}

func TestResolveConcurrentDoubleCallback(t *testing.T) {
	client := newFakeAuthClient()
	r := NewResolver(client)

	cred := mustDerive(t, "U456")

	var wg sync.WaitGroup
	ids := make([]string, 2)
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acc, err := r.Resolve(context.Background(), cred, testProfile("U456"))
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = acc.ID
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, ids[0], ids[1], "both callbacks must resolve to the same account")
}

func TestResolveConflictWithFailingRetry(t *testing.T) {
	// account exists but cannot be entered: both sign-ins fail and
	// sign-up reports a conflict
	r := NewResolver(&conflictOnlyClient{})

	cred := mustDerive(t, "U789")
	_, err := r.Resolve(context.Background(), cred, testProfile("U789"))
	assert.ErrorIs(t, err, ErrAccountConflictUnresolved)
}

// conflictOnlyClient always fails sign-in and always reports the email
// as registered, the "account exists but cannot be entered" dead end.
type conflictOnlyClient struct{}

func (c *conflictOnlyClient) SignIn(ctx context.Context, email, password string) (*accounts.Account, error) {
	return nil, accounts.ErrInvalidCredentials
}

func (c *conflictOnlyClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*accounts.Account, error) {
	return nil, accounts.ErrAlreadyRegistered
}

func (c *conflictOnlyClient) GetUser(ctx context.Context, token string) (*accounts.User, error) {
	return nil, errors.New("not implemented")
}

func TestResolveNoSessionIssued(t *testing.T) {
	client := newFakeAuthClient()
	client.sessions = false // provider withholds sessions (confirmation pending)
	r := NewResolver(client)

	cred := mustDerive(t, "U123")
	_, err := r.Resolve(context.Background(), cred, testProfile("U123"))
	assert.ErrorIs(t, err, ErrNoSessionIssued)
}

func TestResolvePropagatesUnknownSignUpError(t *testing.T) {
	r := NewResolver(&brokenClient{})

	cred := mustDerive(t, "U123")
	_, err := r.Resolve(context.Background(), cred, testProfile("U123"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountConflictUnresolved)
}

type brokenClient struct{}

func (c *brokenClient) SignIn(ctx context.Context, email, password string) (*accounts.Account, error) {
	return nil, accounts.ErrInvalidCredentials
}

func (c *brokenClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*accounts.Account, error) {
	return nil, errors.New("provider unavailable")
}

func (c *brokenClient) GetUser(ctx context.Context, token string) (*accounts.User, error) {
	return nil, errors.New("not implemented")
}
