package validator

import (
	"testing"

	"liftcell/internal/lift"
	"liftcell/internal/wire"

	"github.com/stretchr/testify/assert"
)

func selfNoConflict() Self {
	return Self{RowMin: 1, RowMax: 20, Reach: [2]int{5, 12}}
}

func noPeer() lift.View {
	return lift.View{}
}

func TestAcceptsPlainFull(t *testing.T) {
	job := Job{TaskType: wire.TaskFull, Origin: 5, Destination: 12}
	ok, reason := Validate(job, selfNoConflict(), noPeer())
	assert.True(t, ok)
	assert.Equal(t, wire.CancelNone, reason)
}

func TestCrossLiftCheckRunsFirst(t *testing.T) {
	// This job is simultaneously a cross-lift conflict AND has an
	// origin==0 zero-position problem. Cross-lift must win since it is
	// check 1.
	peer := lift.View{HasActiveJob: true, ReachMin: 3, ReachMax: 10}
	job := Job{TaskType: wire.TaskMoveTo, Origin: 0, Destination: 7}
	self := Self{RowMin: 1, RowMax: 20, Reach: [2]int{7, 7}}

	ok, reason := Validate(job, self, peer)
	assert.False(t, ok)
	assert.Equal(t, wire.CancelLiftsCross, reason)
}

func TestInvalidZeroPositionForFull(t *testing.T) {
	job := Job{TaskType: wire.TaskFull, Origin: 0, Destination: 12}
	ok, reason := Validate(job, selfNoConflict(), noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelInvalidZeroPos, reason)
}

func TestInvalidZeroPositionForMoveTo(t *testing.T) {
	job := Job{TaskType: wire.TaskMoveTo, Origin: 0, Destination: 8}
	ok, reason := Validate(job, selfNoConflict(), noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelInvalidZeroPos, reason)
}

func TestPickupWithTrayBeatsOutOfRange(t *testing.T) {
	// Tray present AND destination out of range: pickup-with-tray (check
	// 3) must win over destination-out-of-reach (check 4).
	job := Job{TaskType: wire.TaskFull, Origin: 5, Destination: 99}
	self := Self{RowMin: 1, RowMax: 20, TrayPresent: true, Reach: [2]int{5, 99}}

	ok, reason := Validate(job, self, noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelPickupWithTray, reason)
}

func TestDestinationOutOfReach(t *testing.T) {
	job := Job{TaskType: wire.TaskFull, Origin: 5, Destination: 99}
	ok, reason := Validate(job, selfNoConflict(), noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelDestOutOfReach, reason)
}

func TestInvalidAssignmentMissingDestination(t *testing.T) {
	job := Job{TaskType: wire.TaskBringAway, Origin: 5, Destination: 0}
	ok, reason := Validate(job, selfNoConflict(), noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelInvalidAssignment, reason)
}

func TestOriginOutOfReach(t *testing.T) {
	job := Job{TaskType: wire.TaskMoveTo, Origin: 99, Destination: 0}
	self := Self{RowMin: 1, RowMax: 20, Reach: [2]int{99, 99}}
	ok, reason := Validate(job, self, noPeer())
	assert.False(t, ok)
	assert.Equal(t, wire.CancelOriginOutOfReach, reason)
}

func TestPreparePickupDoesNotRequireDestination(t *testing.T) {
	job := Job{TaskType: wire.TaskPreparePickup, Origin: 5, Destination: 0}
	ok, _ := Validate(job, selfNoConflict(), noPeer())
	assert.True(t, ok)
}

func TestValidateCancel(t *testing.T) {
	canceled, reason := ValidateCancel(true)
	assert.True(t, canceled)
	assert.Equal(t, wire.CancelByEcoSystem, reason)

	canceled, _ = ValidateCancel(false)
	assert.False(t, canceled)
}
