package dto

import "facttodo/internal/domains/todo/model"

type TodoResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Name = model.Name
	r.Checked = model.Checked
}

// TodoResponses always encodes as a JSON array, never null.
type TodoResponses []TodoResponse

func (r *TodoResponses) FromModels(models []model.Todo) {
	res := make(TodoResponses, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	*r = res
}
