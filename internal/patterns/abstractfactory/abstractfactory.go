// Package abstractfactory demonstrates families of related objects created
// through one factory interface.
package abstractfactory

import "fmt"

// Pet is an animal sold by a store.
type Pet interface {
	Speak() string
	Type() string
}

// Food is what a pet eats.
type Food interface {
	Show() string
}

// PetFactory makes a pet together with its matching food.
type PetFactory interface {
	Pet() Pet
	Food() Food
}

// Dog is a Pet.
type Dog struct {
	Name string
	Kind string
}

// Speak implements Pet.
func (d Dog) Speak() string { return fmt.Sprintf("%q says Woof!", d.Name) }

// Type implements Pet.
func (d Dog) Type() string { return d.Kind + " dog" }

// DogFood is Food for dogs.
type DogFood struct{}

// Show implements Food.
func (DogFood) Show() string { return "Pedigree" }

// Cat is a Pet.
type Cat struct {
	Name string
	Kind string
}

// Speak implements Pet.
func (c Cat) Speak() string { return fmt.Sprintf("%q says Moew!", c.Name) }

// Type implements Pet.
func (c Cat) Type() string { return c.Kind + " cat" }

// CatFood is Food for cats.
type CatFood struct{}

// Show implements Food.
func (CatFood) Show() string { return "Whiskas" }

// DogFactory makes bulldogs.
type DogFactory struct{}

// Pet implements PetFactory.
func (DogFactory) Pet() Pet { return Dog{Name: "Spike", Kind: "bulldog"} }

// Food implements PetFactory.
func (DogFactory) Food() Food { return DogFood{} }

// CatFactory makes persian cats.
type CatFactory struct{}

// Pet implements PetFactory.
func (CatFactory) Pet() Pet { return Cat{Name: "Hope", Kind: "persian"} }

// Food implements PetFactory.
func (CatFactory) Food() Food { return CatFood{} }

// FluffyStore sells whatever its factory makes.
type FluffyStore struct {
	factory PetFactory
}

// NewFluffyStore returns a store backed by factory.
func NewFluffyStore(factory PetFactory) *FluffyStore {
	return &FluffyStore{factory: factory}
}

// ShowPet describes the store's pet and its food.
func (s *FluffyStore) ShowPet() []string {
	pet := s.factory.Pet()
	food := s.factory.Food()
	return []string{
		"Our pet is " + pet.Type(),
		pet.Type() + " " + pet.Speak(),
		"It eats " + food.Show() + " food",
	}
}

var (
	_ PetFactory = DogFactory{}
	_ PetFactory = CatFactory{}
)
