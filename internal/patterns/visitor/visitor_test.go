package visitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

type spyHouse struct {
	calls []string
}

func (s *spyHouse) Accept(v Visitor)            { v.Visit(s) }
func (s *spyHouse) WorkOnHVAC(v Visitor)        { s.calls = append(s.calls, "hvac:"+v.String()) }
func (s *spyHouse) WorkOnElectricity(v Visitor) { s.calls = append(s.calls, "electricity:"+v.String()) }

func TestVisitorsDispatchToTheRightWork(t *testing.T) {
	house := &spyHouse{}
	house.Accept(HvacSpecialist{})
	house.Accept(Electrician{})

	assert.Equal(t, []string{"hvac:HvacSpecialist", "electricity:Electrician"}, house.calls)
}

func TestConcreteHouse(t *testing.T) {
	buf := output.NewCaptureBuffer()
	house := NewConcreteHouse(buf)

	house.WorkOnHVAC(Electrician{})
	assert.Equal(t, "ConcreteHouse worked on by Electrician\n", buf.String())
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"ConcreteHouse worked on by HvacSpecialist",
		"ConcreteHouse worked on by Electrician",
	}, buf.Lines())
}
