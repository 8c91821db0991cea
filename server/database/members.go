package database

import (
	"context"
	"fmt"
)

func (d *Database) MemberExists(ctx context.Context, memberID int) (bool, error) {
	var exists bool
	if err := d.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM members WHERE member_id = $1)", memberID); err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}

	return exists, nil
}
