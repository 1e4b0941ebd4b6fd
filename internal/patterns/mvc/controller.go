package mvc

import "errors"

// Controller reads from the model and tells the view what to show.
type Controller struct {
	model Model
	view  View
}

// NewController wires model to view.
func NewController(model Model, view View) *Controller {
	return &Controller{model: model, view: view}
}

// ShowItems lists every item.
func (c *Controller) ShowItems() {
	c.view.ShowItemList(c.model.ItemType(), c.model.Items())
}

// ShowItemInformation shows one item. A missing item is reported through the
// view; any other error is returned.
func (c *Controller) ShowItemInformation(name string) error {
	item, err := c.model.Get(name)
	switch {
	case errors.Is(err, ErrItemNotFound):
		c.view.ItemNotFound(c.model.ItemType(), name)
		return nil
	case err != nil:
		return err
	}
	c.view.ShowItemInformation(c.model.ItemType(), item)
	return nil
}
