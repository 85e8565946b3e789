package schema

import "time"

// OrphanedObjectStatus is the state of an orphaned storage object
type OrphanedObjectStatus string

const (
	// OrphanedObjectStatusPending is waiting for the sweeper to delete it
	OrphanedObjectStatusPending OrphanedObjectStatus = "pending"
	// OrphanedObjectStatusAbandoned exceeded the maximum number of delete attempts
	OrphanedObjectStatusAbandoned OrphanedObjectStatus = "abandoned"
)

// OrphanedObject represents the orphaned_objects table - storage objects whose
// delete failed after their database row was removed
type OrphanedObject struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Key is the object storage key
	Key string `gorm:"column:key;not null;type:text;uniqueIndex"`
	// Reason describes the operation that left the object behind
	Reason string `gorm:"column:reason;not null;type:varchar(50)"`
	// Status is pending or abandoned
	Status OrphanedObjectStatus `gorm:"column:status;not null;default:pending"`
	// Attempts is the number of delete attempts made
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastError is the most recent delete error
	LastError *string `gorm:"column:last_error;type:text"`
	// LastAttemptAt is the timestamp of the most recent delete attempt
	LastAttemptAt *time.Time `gorm:"column:last_attempt_at;type:timestamptz"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OrphanedObject model
func (OrphanedObject) TableName() string {
	return "orphaned_objects"
}
