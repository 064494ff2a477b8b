package domain

import "time"

// Checkpoint is the lifecycle point an evidence photo documents.
type Checkpoint string

// List of possible evidence checkpoints.
const (
	CheckpointRequested Checkpoint = "REQUESTED"
	CheckpointPickedUp  Checkpoint = "PICKED_UP"
	CheckpointDelivered Checkpoint = "DELIVERED"
)

// List of submitter roles recorded with an evidence photo.
const (
	UploadedBySender  = "SENDER"
	UploadedByCourier = "RIDER"
)

// EvidencePhoto is an immutable record of a photo backing a lifecycle
// transition. PhotoRef is an opaque storage reference handed to the engine
// by the file-storage collaborator; the engine never dereferences it.
type EvidencePhoto struct {
	ID         int64
	DeliveryID int64
	Checkpoint Checkpoint
	UploadedBy string
	PhotoRef   string
	CreatedAt  time.Time
}
