package wire

import "fmt"

// LiftID identifies which of the two lifts a path or job belongs to.
type LiftID int

const (
	Lift1 LiftID = 1
	Lift2 LiftID = 2
)

func (id LiftID) String() string {
	return fmt.Sprintf("Elevator%d", int(id))
}

// EcoToPlc paths (supervisor writes, core reads).
func WatchDogPath() string { return "EcoToPlc/xWatchDog" }

func AckMovementPath(id LiftID) string {
	return fmt.Sprintf("EcoToPlc/%s/xAcknowledgeMovement", id)
}

// CancelAssignmentPath is the canonical (corrected) spelling, valid for both lifts.
func CancelAssignmentPath(id LiftID) string {
	return fmt.Sprintf("EcoToPlc/%s/iCancelAssignment", id)
}

// CancelAssignmentAliasPath is the historic typo, accepted as an alias on
// lift 1 only.
func CancelAssignmentAliasPath(id LiftID) (string, bool) {
	if id != Lift1 {
		return "", false
	}
	return fmt.Sprintf("EcoToPlc/%s/iCancelAssignent", id), true
}

func ClearErrorPath(id LiftID) string {
	return fmt.Sprintf("EcoToPlc/%s/xClearError", id)
}

func assignmentRoot(id LiftID) string {
	return fmt.Sprintf("EcoToPlc/%s/%sEcoSystAssignment", id, id)
}

func TaskTypePath(id LiftID) string    { return assignmentRoot(id) + "/iTaskType" }
func OriginationPath(id LiftID) string { return assignmentRoot(id) + "/iOrigination" }
func DestinationPath(id LiftID) string { return assignmentRoot(id) + "/iDestination" }

// PlcToEco paths (core writes, supervisor reads).
func AmountOfStationsPath() string { return "PlcToEco/StationDataToEco/iAmountOfSations" }
func MainStatusPath() string       { return "PlcToEco/StationDataToEco/iMainStatus" }

func stationDataRoot(index int) string {
	return fmt.Sprintf("PlcToEco/StationData/%d", index)
}

func CyclePath(index int) string                   { return stationDataRoot(index) + "/iCycle" }
func StationStatusPath(index int) string            { return stationDataRoot(index) + "/iStationStatus" }
func HandshakeJobTypePath(index int) string         { return stationDataRoot(index) + "/Handshake/iJobType" }
func HandshakeRowNrPath(index int) string           { return stationDataRoot(index) + "/Handshake/iRowNr" }
func StationCancelAssignmentPath(index int) string  { return stationDataRoot(index) + "/iCancelAssignment" }
func ShortAlarmDescriptionPath(index int) string    { return stationDataRoot(index) + "/sShortAlarmDescription" }
func AlarmSolutionPath(index int) string            { return stationDataRoot(index) + "/sAlarmSolution" }
func StationStateDescriptionPath(index int) string  { return stationDataRoot(index) + "/sStationStateDescription" }

func SeqStepCommentPath(id LiftID) string    { return fmt.Sprintf("PlcToEco/%s/sSeq_Step_comment", id) }
func RowLocationPath(id LiftID) string       { return fmt.Sprintf("PlcToEco/%s/iElevatorRowLocation", id) }
func TrayInElevatorPath(id LiftID) string    { return fmt.Sprintf("PlcToEco/%s/xTrayInElevator", id) }
func CurrentForkSidePath(id LiftID) string   { return fmt.Sprintf("PlcToEco/%s/iCurrentForkSide", id) }
func ErrorCodePath(id LiftID) string         { return fmt.Sprintf("PlcToEco/%s/iErrorCode", id) }

// StationIndex maps a LiftID to its zero-based StationData array index.
func StationIndex(id LiftID) int { return int(id) - 1 }
