// Package wire holds the external, on-wire contract: the cancel/task/status
// enums and the EcoToPlc/PlcToEco path names of the variable space.
package wire

import "fmt"

// TaskType is the job kind the supervisor writes into Eco_iTaskType.
type TaskType int64

const (
	TaskNone          TaskType = 0
	TaskFull          TaskType = 1
	TaskMoveTo        TaskType = 2
	TaskPreparePickup TaskType = 3
	TaskBringAway     TaskType = 4
)

func (t TaskType) String() string {
	switch t {
	case TaskNone:
		return "None"
	case TaskFull:
		return "Full"
	case TaskMoveTo:
		return "MoveTo"
	case TaskPreparePickup:
		return "PreparePickup"
	case TaskBringAway:
		return "BringAway"
	default:
		return fmt.Sprintf("TaskType(%d)", int64(t))
	}
}

// CancelCode is the wire-level reject/abort reason enum, 1..7.
type CancelCode int16

const (
	CancelNone               CancelCode = 0
	CancelPickupWithTray     CancelCode = 1
	CancelDestOutOfReach     CancelCode = 2
	CancelOriginOutOfReach   CancelCode = 3
	CancelInvalidZeroPos     CancelCode = 4
	CancelLiftsCross         CancelCode = 5
	CancelInvalidAssignment  CancelCode = 6
	CancelByEcoSystem        CancelCode = 7
)

func (c CancelCode) String() string {
	switch c {
	case CancelNone:
		return "None"
	case CancelPickupWithTray:
		return "PickupWithTray"
	case CancelDestOutOfReach:
		return "DestinationOutOfReach"
	case CancelOriginOutOfReach:
		return "OriginOutOfReach"
	case CancelInvalidZeroPos:
		return "InvalidZeroPosition"
	case CancelLiftsCross:
		return "LiftsCross"
	case CancelInvalidAssignment:
		return "InvalidAssignment"
	case CancelByEcoSystem:
		return "CancelledByEcoSystem"
	default:
		return fmt.Sprintf("CancelCode(%d)", int16(c))
	}
}

// StationStatus is the iStationStatus enum.
type StationStatus int16

const (
	StatusNA        StationStatus = 0
	StatusOK        StationStatus = 1
	StatusNotif     StationStatus = 2
	StatusWarn      StationStatus = 3
	StatusErr       StationStatus = 4
	StatusBoot      StationStatus = 5
	StatusOffline   StationStatus = 6
	StatusSemiAuto  StationStatus = 7
	StatusTeach     StationStatus = 8
	StatusHand      StationStatus = 9
	StatusHome      StationStatus = 10
	StatusStop      StationStatus = 11
)

func (s StationStatus) String() string {
	names := map[StationStatus]string{
		StatusNA: "NA", StatusOK: "OK", StatusNotif: "Notification",
		StatusWarn: "Warning", StatusErr: "Error", StatusBoot: "Boot",
		StatusOffline: "Offline", StatusSemiAuto: "SemiAuto", StatusTeach: "Teach",
		StatusHand: "Hand", StatusHome: "Home", StatusStop: "Stop",
	}
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("StationStatus(%d)", int16(s))
}

// ForkSide is the fork extension state, 0=left, 1=middle, 2=right.
type ForkSide int

const (
	ForkLeft   ForkSide = 0
	ForkMiddle ForkSide = 1
	ForkRight  ForkSide = 2
)

func (f ForkSide) String() string {
	switch f {
	case ForkLeft:
		return "Left"
	case ForkMiddle:
		return "Middle"
	case ForkRight:
		return "Right"
	default:
		return fmt.Sprintf("ForkSide(%d)", int(f))
	}
}

// HandshakeJobType is the value the PLC publishes on Handshake.iJobType to
// indicate which acknowledgement it is waiting for.
type HandshakeJobType int

const (
	HandshakeIdle    HandshakeJobType = 0
	HandshakeGetTray HandshakeJobType = 1
	HandshakeSetTray HandshakeJobType = 2
)

func (h HandshakeJobType) String() string {
	switch h {
	case HandshakeIdle:
		return "Idle"
	case HandshakeGetTray:
		return "GetTray"
	case HandshakeSetTray:
		return "SetTray"
	default:
		return fmt.Sprintf("HandshakeJobType(%d)", int(h))
	}
}
