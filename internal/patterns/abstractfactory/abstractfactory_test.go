package abstractfactory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestPets(t *testing.T) {
	dog := Dog{Name: "Spike", Kind: "bulldog"}
	assert.Equal(t, `"Spike" says Woof!`, dog.Speak())
	assert.Equal(t, "bulldog dog", dog.Type())

	cat := Cat{Name: "Miya", Kind: "persian"}
	assert.Equal(t, `"Miya" says Moew!`, cat.Speak())
	assert.Equal(t, "persian cat", cat.Type())
}

func TestFood(t *testing.T) {
	assert.Equal(t, "Pedigree", DogFood{}.Show())
	assert.Equal(t, "Whiskas", CatFood{}.Show())
}

func TestFactories(t *testing.T) {
	assert.IsType(t, Dog{}, DogFactory{}.Pet())
	assert.IsType(t, DogFood{}, DogFactory{}.Food())
	assert.IsType(t, Cat{}, CatFactory{}.Pet())
	assert.IsType(t, CatFood{}, CatFactory{}.Food())
}

func TestFluffyStore(t *testing.T) {
	assert.Equal(t, []string{
		"Our pet is bulldog dog",
		`bulldog dog "Spike" says Woof!`,
		"It eats Pedigree food",
	}, NewFluffyStore(DogFactory{}).ShowPet())
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	lines := buf.Lines()
	require.Len(t, lines, 6)
	assert.Equal(t, "Our pet is persian cat", lines[0])
	assert.Equal(t, "Our pet is bulldog dog", lines[3])
}
