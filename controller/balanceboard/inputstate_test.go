package balanceboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padservo/padservo/controller"
	"github.com/padservo/padservo/controller/balanceboard"
	th "github.com/padservo/padservo/internal/testing"
)

func TestDecode(t *testing.T) {
	h := th.NewHandle("wbb", controller.CapBalanceBoard)
	h.Balance = balanceboard.InputState{TopLeft: 10001, TopRight: 2, BottomLeft: 3, BottomRight: 4, Temperature: -5}
	assert.Equal(t, h.Balance, balanceboard.Decode(h))
	assert.Equal(t, balanceboard.InputState{}, balanceboard.Decode(th.NoFeedback(h)))
}

func TestFormatReport(t *testing.T) {
	b := balanceboard.InputState{TopLeft: 10001, TopRight: 2, BottomLeft: 3, BottomRight: 4, Temperature: -5}
	assert.Equal(t, "idx=3,  TL=10001, TR=2, BL=3, BR=4, temperature=-5", b.FormatReport(3))
}
