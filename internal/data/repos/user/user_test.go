package user

import (
	"context"
	"testing"

	"github.com/aartrack/aar-backend/internal/data/repos/testutil"
	types "github.com/aartrack/aar-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, &types.User{
		Email:        "userrepo@example.com",
		PasswordHash: "hash",
		Name:         "Repo User",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("Create: expected assigned ID")
	}

	gotByID, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotByID == nil || gotByID.Email != created.Email {
		t.Fatalf("GetByID: unexpected result: %+v", gotByID)
	}

	gotByEmail, err := repo.GetByEmail(ctx, tx, created.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if gotByEmail == nil || gotByEmail.ID != created.ID {
		t.Fatalf("GetByEmail: unexpected result: %+v", gotByEmail)
	}

	missing, err := repo.GetByEmail(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("GetByEmail missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByEmail missing: expected nil, got %+v", missing)
	}

	exists, err := repo.EmailExists(ctx, tx, created.Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if exists {
		t.Fatalf("EmailExists: expected false")
	}
}
