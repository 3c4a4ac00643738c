package rpc

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hiveworld/simcore/engine/table"
	"github.com/hiveworld/simcore/engine/world"
)

// Commands implements the world-mutating boundary operations of spec
// section 6 (PlaceStructure, TakeRoom) plus the read-only ListUsers /
// GetUserInfo and Health.Ping surfaces. Every method takes the world's
// exclusive (or, where noted, shared) lock for its own duration; callers
// never need to lock the world themselves.
type Commands struct {
	World *world.World
}

// New constructs a Commands boundary over w.
func New(w *world.World) *Commands { return &Commands{World: w} }

// PlaceStructure creates a new structure entity at pos owned by user,
// returning ErrInvalidArgument if the room is unknown to the world or the
// position is already occupied (spec section 6: "ok/invalid-argument").
func (c *Commands) PlaceStructure(user world.UserId, pos world.WorldPosition) error {
	if user == (world.UserId)(uuid.Nil) {
		return ErrMissingField
	}

	c.World.Lock()
	defer c.World.Unlock()

	inner, ok := c.World.PositionIndex.At(pos.Room)
	if !ok {
		return fmt.Errorf("%w: unknown room %v", ErrInvalidArgument, pos.Room)
	}
	if inner.ContainsKey(pos.Pos) {
		return fmt.Errorf("%w: position %v already occupied", ErrInvalidArgument, pos.Pos)
	}

	id, err := c.World.AllocEntity()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	c.World.Positions.Insert(id, world.Position{Pos: pos})
	c.World.Owners.Insert(id, world.Owner{UserID: user})
	c.World.IsStructure.Set(id)
	inner.Insert(pos.Pos, id)
	return nil
}

// TakeRoom claims room for user, failing with a typed error if the room is
// already owned, the user isn't registered, or the claim would exceed the
// user's configured room limit. Grounded on the original take_room command:
// owned-check, then registration-check, then limit-check, then commit.
func (c *Commands) TakeRoom(user world.UserId, room world.Room) error {
	if user == (world.UserId)(uuid.Nil) {
		return ErrMissingField
	}

	c.World.Lock()
	defer c.World.Unlock()

	if _, owned := c.World.RoomOwners[room]; owned {
		return ErrOwned
	}

	info, registered := c.World.Users.Get(user)
	if !registered {
		return ErrNotRegistered
	}

	cfg, _ := c.World.Config.Get()
	if uint32(len(info.Rooms)) >= cfg.MaxRoomsPerUser {
		return &MaxRoomsExceededError{Limit: cfg.MaxRoomsPerUser}
	}

	info.Rooms = append(info.Rooms, room)
	c.World.Users.Insert(user, info)
	c.World.RoomOwners[room] = user
	return nil
}

// ListUsers returns every registered UserId in ascending key order.
func (c *Commands) ListUsers() []world.UserId {
	c.World.RLock()
	defer c.World.RUnlock()

	var ids []world.UserId
	c.World.Users.Ascend(func(key table.BTreeKey, _ world.UserInfo) bool {
		ids = append(ids, key.(world.UserId))
		return true
	})
	return ids
}

// GetUserInfo returns the registered info for user, if any.
func (c *Commands) GetUserInfo(user world.UserId) (world.UserInfo, bool) {
	c.World.RLock()
	defer c.World.RUnlock()
	return c.World.Users.Get(user)
}

// Ping implements Health per spec section 6: reachable, always ok.
func (c *Commands) Ping() error { return nil }
