package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrpg/internal/domain"
	"zrpg/internal/domain/services"
	"zrpg/internal/objectid"
	"zrpg/internal/repository/memory"
)

func newWeaponService(t *testing.T) services.WeaponService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWeaponService(memory.NewWeaponRepository(), logger)
}

func validWeaponRequest() *services.CreateWeaponRequest {
	return &services.CreateWeaponRequest{
		Name:           "Baseball Bat",
		Description:    "An old wooden bat.",
		AttackDieCount: 1,
		AttackDieSides: 6,
	}
}

func TestCreateWeapon(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and assigns id", func(t *testing.T) {
		svc := newWeaponService(t)

		weapon, err := svc.CreateWeapon(ctx, validWeaponRequest())
		require.NoError(t, err)

		assert.True(t, objectid.IsValid(weapon.ID))
		assert.Equal(t, "Baseball Bat", weapon.Name)
		assert.Equal(t, 1, weapon.AttackDieCount)
		assert.Equal(t, 6, weapon.AttackDieSides)
		assert.Equal(t, 0, weapon.TimesLooted)

		got, err := svc.InspectWeapon(ctx, weapon.ID)
		require.NoError(t, err)
		assert.Equal(t, weapon.ID, got.ID)
		assert.Equal(t, weapon.Name, got.Name)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		svc := newWeaponService(t)

		_, err := svc.CreateWeapon(ctx, validWeaponRequest())
		require.NoError(t, err)

		dup := validWeaponRequest()
		dup.Description = "Another bat"
		_, err = svc.CreateWeapon(ctx, dup)
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Contains(t, err.Error(), "Baseball Bat")
	})

	t.Run("first failing field wins", func(t *testing.T) {
		svc := newWeaponService(t)

		tests := []struct {
			name      string
			mutate    func(*services.CreateWeaponRequest)
			wantField string
		}{
			{
				name:      "missing name",
				mutate:    func(r *services.CreateWeaponRequest) { r.Name = "" },
				wantField: "name",
			},
			{
				name:      "missing description",
				mutate:    func(r *services.CreateWeaponRequest) { r.Description = "" },
				wantField: "description",
			},
			{
				name:      "zero die count",
				mutate:    func(r *services.CreateWeaponRequest) { r.AttackDieCount = 0 },
				wantField: "attackDieCount",
			},
			{
				name:      "negative die count",
				mutate:    func(r *services.CreateWeaponRequest) { r.AttackDieCount = -2 },
				wantField: "attackDieCount",
			},
			{
				name:      "zero die sides",
				mutate:    func(r *services.CreateWeaponRequest) { r.AttackDieSides = 0 },
				wantField: "attackDieSides",
			},
			{
				name: "die count reported before die sides",
				mutate: func(r *services.CreateWeaponRequest) {
					r.AttackDieCount = 0
					r.AttackDieSides = 0
				},
				wantField: "attackDieCount",
			},
			{
				name:      "negative timesLooted",
				mutate:    func(r *services.CreateWeaponRequest) { r.TimesLooted = intPtr(-1) },
				wantField: "timesLooted",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validWeaponRequest()
				tt.mutate(req)

				_, err := svc.CreateWeapon(ctx, req)
				var fieldErr *domain.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
			})
		}
	})
}

func TestPatchWeapon(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (services.WeaponService, string) {
		svc := newWeaponService(t)
		weapon, err := svc.CreateWeapon(ctx, validWeaponRequest())
		require.NoError(t, err)
		return svc, weapon.ID
	}

	t.Run("merges only the provided fields", func(t *testing.T) {
		svc, id := setup(t)

		got, err := svc.PatchWeapon(ctx, id, &services.PatchWeaponRequest{
			AttackDieCount: intPtr(3),
		})
		require.NoError(t, err)

		assert.Equal(t, "Baseball Bat", got.Name)
		assert.Equal(t, 3, got.AttackDieCount)
		assert.Equal(t, 6, got.AttackDieSides)
	})

	t.Run("rejects out-of-range numeric fields", func(t *testing.T) {
		tests := []struct {
			name      string
			req       *services.PatchWeaponRequest
			wantField string
		}{
			{"zero die count", &services.PatchWeaponRequest{AttackDieCount: intPtr(0)}, "attackDieCount"},
			{"negative die count", &services.PatchWeaponRequest{AttackDieCount: intPtr(-1)}, "attackDieCount"},
			{"zero die sides", &services.PatchWeaponRequest{AttackDieSides: intPtr(0)}, "attackDieSides"},
			{"negative die sides", &services.PatchWeaponRequest{AttackDieSides: intPtr(-1)}, "attackDieSides"},
			{"negative times looted", &services.PatchWeaponRequest{TimesLooted: intPtr(-1)}, "timesLooted"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, id := setup(t)

				_, err := svc.PatchWeapon(ctx, id, tt.req)
				var fieldErr *domain.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)

				// The stored weapon is untouched after a rejected patch.
				got, err := svc.InspectWeapon(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, 1, got.AttackDieCount)
				assert.Equal(t, 6, got.AttackDieSides)
				assert.Equal(t, 0, got.TimesLooted)
			})
		}
	})

	t.Run("accepts zero times looted", func(t *testing.T) {
		svc, id := setup(t)

		got, err := svc.PatchWeapon(ctx, id, &services.PatchWeaponRequest{
			TimesLooted: intPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, got.TimesLooted)
	})

	t.Run("stealing another weapon's name fails", func(t *testing.T) {
		svc, id := setup(t)

		other := validWeaponRequest()
		other.Name = "Crowbar"
		_, err := svc.CreateWeapon(ctx, other)
		require.NoError(t, err)

		_, err = svc.PatchWeapon(ctx, id, &services.PatchWeaponRequest{
			Name: strPtr("Crowbar"),
		})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown id fails NotFound", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.PatchWeapon(ctx, objectid.New(), &services.PatchWeaponRequest{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReplaceWeapon(t *testing.T) {
	ctx := context.Background()

	t.Run("creates at a fresh id and is idempotent", func(t *testing.T) {
		svc := newWeaponService(t)
		id := objectid.New()
		req := &services.ReplaceWeaponRequest{
			Name:           "Fire Axe",
			Description:    "Still sharp.",
			AttackDieCount: 2,
			AttackDieSides: 8,
		}

		weapon, created, err := svc.ReplaceWeapon(ctx, id, req)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, id, weapon.ID)

		again, created, err := svc.ReplaceWeapon(ctx, id, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, weapon.Name, again.Name)
		assert.Equal(t, weapon.AttackDieCount, again.AttackDieCount)
	})

	t.Run("overwrites every field and keeps createdAt", func(t *testing.T) {
		svc := newWeaponService(t)

		original, err := svc.CreateWeapon(ctx, validWeaponRequest())
		require.NoError(t, err)

		replaced, created, err := svc.ReplaceWeapon(ctx, original.ID, &services.ReplaceWeaponRequest{
			Name:           "Nail Bat",
			Description:    "Upgraded.",
			AttackDieCount: 2,
			AttackDieSides: 6,
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Nail Bat", replaced.Name)
		assert.Equal(t, 0, replaced.TimesLooted)
		assert.Equal(t, original.CreatedAt, replaced.CreatedAt)
	})
}

func TestDeleteWeapon(t *testing.T) {
	ctx := context.Background()
	svc := newWeaponService(t)

	weapon, err := svc.CreateWeapon(ctx, validWeaponRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteWeapon(ctx, weapon.ID)
	require.NoError(t, err)
	assert.Equal(t, weapon.ID, deleted.ID)

	_, err = svc.DeleteWeapon(ctx, weapon.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWeaponInvalidID(t *testing.T) {
	ctx := context.Background()
	svc := newWeaponService(t)

	_, err := svc.InspectWeapon(ctx, "not-a-valid-id")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.DeleteWeapon(ctx, "not-a-valid-id")
	require.ErrorIs(t, err, domain.ErrInvalidID)
}
