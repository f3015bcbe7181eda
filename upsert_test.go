package chatcache

import (
	"testing"

	"github.com/emberloop/chatcache/shardmap"
)

func TestUpsertItemReturnsExistingHandleWhenEqual(t *testing.T) {
	m := shardmap.New[RoleID, *Role](4)
	r1 := &Role{ID: RoleID(1), Name: "admin", Permissions: 8}
	got1 := upsertItem(m, r1.ID, r1)
	if got1 != r1 {
		t.Fatal("expected first upsert to install the given pointer")
	}

	r2 := &Role{ID: RoleID(1), Name: "admin", Permissions: 8}
	got2 := upsertItem(m, r2.ID, r2)
	if got2 != got1 {
		t.Error("expected upsert of an equal value to return the original handle, not a new one")
	}
}

func TestUpsertItemReplacesWhenDifferent(t *testing.T) {
	m := shardmap.New[RoleID, *Role](4)
	r1 := &Role{ID: RoleID(1), Name: "admin", Permissions: 8}
	upsertItem(m, r1.ID, r1)

	r2 := &Role{ID: RoleID(1), Name: "admin", Permissions: 16}
	got := upsertItem(m, r2.ID, r2)
	if got != r2 {
		t.Error("expected upsert of a changed value to install the new pointer")
	}
}

func TestUpsertGuildItemPreservesOwnerOnEqualMatch(t *testing.T) {
	m := shardmap.New[RoleID, GuildItem[*Role]](4)
	r := &Role{ID: RoleID(9), Name: "mod"}
	upsertGuildItem(m, r.ID, GuildID(1), r)

	same := &Role{ID: RoleID(9), Name: "mod"}
	got := upsertGuildItem(m, r.ID, GuildID(2), same)

	if got.GuildID != GuildID(1) {
		t.Errorf("expected guild_id to be preserved as 1 on equal match, got %d", got.GuildID)
	}
}

func TestUpsertGuildItemAdoptsNewOwnerOnChange(t *testing.T) {
	m := shardmap.New[RoleID, GuildItem[*Role]](4)
	r := &Role{ID: RoleID(9), Name: "mod"}
	upsertGuildItem(m, r.ID, GuildID(1), r)

	changed := &Role{ID: RoleID(9), Name: "moderator"}
	got := upsertGuildItem(m, r.ID, GuildID(2), changed)

	if got.GuildID != GuildID(2) {
		t.Errorf("expected guild_id to move to 2 when the role actually changed, got %d", got.GuildID)
	}
}
