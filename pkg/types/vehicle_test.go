package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionsFor(t *testing.T) {
	assert.Len(t, PositionsFor(KindTractor), 8)
	assert.Len(t, PositionsFor(KindTrailer), 12)
	assert.Nil(t, PositionsFor("bus"))
}

func TestValidPosition(t *testing.T) {
	tests := []struct {
		name     string
		kind     VehicleKind
		position string
		want     bool
	}{
		{name: "tractor front", kind: KindTractor, position: "F1", want: true},
		{name: "tractor last front", kind: KindTractor, position: "F8", want: true},
		{name: "tractor rear position", kind: KindTractor, position: "R1", want: false},
		{name: "tractor out of range", kind: KindTractor, position: "F9", want: false},
		{name: "trailer rear", kind: KindTrailer, position: "R12", want: true},
		{name: "trailer front position", kind: KindTrailer, position: "F1", want: false},
		{name: "lowercase", kind: KindTractor, position: "f1", want: false},
		{name: "empty", kind: KindTractor, position: "", want: false},
		{name: "unknown kind", kind: "bus", position: "F1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPosition(tt.kind, tt.position))
		})
	}
}

func TestVehicleKindValid(t *testing.T) {
	assert.True(t, KindTractor.Valid())
	assert.True(t, KindTrailer.Valid())
	assert.False(t, VehicleKind("").Valid())
	assert.False(t, VehicleKind("bus").Valid())
}
