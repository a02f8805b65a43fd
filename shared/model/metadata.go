package model

import "hotel/shared/timezone"

// Metadata carries audit columns. Timestamps are epoch seconds.
type Metadata struct {
	CreatedAt  int64  `db:"created_at"`
	ModifiedAt int64  `db:"modified_at"`
	CreatedBy  string `db:"created_by"`
	ModifiedBy string `db:"modified_by"`
}

func NewMetadata(user string) Metadata {
	now := timezone.Now().Unix()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
