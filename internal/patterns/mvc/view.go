package mvc

import (
	"fmt"
	"io"
	"strings"
)

// View is the presentation side of the pattern.
type View interface {
	ShowItemList(itemType string, items []string)
	ShowItemInformation(itemType string, item Item)
	ItemNotFound(itemType, name string)
}

// ConsoleView prints to a writer.
type ConsoleView struct {
	out io.Writer
}

var _ View = (*ConsoleView)(nil)

// NewConsoleView returns a view writing to out.
func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

// ShowItemList implements View.
func (v *ConsoleView) ShowItemList(itemType string, items []string) {
	fmt.Fprintf(v.out, "%s LIST:\n", strings.ToUpper(itemType))
	for _, item := range items {
		fmt.Fprintln(v.out, item)
	}
	fmt.Fprintln(v.out)
}

// ShowItemInformation implements View.
func (v *ConsoleView) ShowItemInformation(itemType string, item Item) {
	fmt.Fprintf(v.out, "%s INFORMATION:\n", strings.ToUpper(itemType))
	fmt.Fprintf(v.out, "Name: %s, Price: %s, Quantity: %d\n\n", item.Name, item.Price, item.Quantity)
}

// ItemNotFound implements View.
func (v *ConsoleView) ItemNotFound(itemType, name string) {
	fmt.Fprintf(v.out, "That %q %q does not exist in the records\n", itemType, name)
}
