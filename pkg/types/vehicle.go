package types

// VehicleKind discriminates the two vehicle tables.
type VehicleKind string

const (
	KindTractor VehicleKind = "tractor"
	KindTrailer VehicleKind = "trailer"
)

// Valid reports whether k is a recognized vehicle kind.
func (k VehicleKind) Valid() bool {
	return k == KindTractor || k == KindTrailer
}

// TractorPositions are the eight paired front wheel positions of a tractor.
var TractorPositions = []string{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8"}

// TrailerPositions are the twelve paired rear wheel positions of a trailer.
var TrailerPositions = []string{
	"R1", "R2", "R3", "R4", "R5", "R6",
	"R7", "R8", "R9", "R10", "R11", "R12",
}

// PositionsFor returns the tire position set for the given vehicle kind.
// Returns nil for an unknown kind.
func PositionsFor(kind VehicleKind) []string {
	switch kind {
	case KindTractor:
		return TractorPositions
	case KindTrailer:
		return TrailerPositions
	default:
		return nil
	}
}

// ValidPosition reports whether position belongs to the position set of kind.
func ValidPosition(kind VehicleKind, position string) bool {
	for _, p := range PositionsFor(kind) {
		if p == position {
			return true
		}
	}
	return false
}

// Tractor is a towing unit. Tractors carry the odometer; trailers do not.
type Tractor struct {
	ID        int64  `json:"id"`
	Plate     string `json:"plate"`
	Mileage   int64  `json:"mileage"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

// Trailer is a towed unit.
type Trailer struct {
	ID        int64  `json:"id"`
	Plate     string `json:"plate"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}
