package schema

import "fmt"

// Tabler is implemented by every model.
type Tabler interface {
	TableName() string
}

// WorldModels returns world-geography models in creation order.
func WorldModels() []any {
	return []any{
		&Country{},
		&Region{},
		&City{},
	}
}

// LogModels returns logging models.
func LogModels() []any {
	return []any{
		&Log{},
	}
}

// WineModels returns wine-domain models in creation order:
// tables that reference only external tables come first.
func WineModels() []any {
	return []any{
		&Grape{},
		&Family{},
		&Person{},
		&Vineyard{},
		&Variety{},
		&Winery{},
		&Wine{},
		&Vintage{},
	}
}

// WineDependencies returns tables that must exist before wine
// tables are created.
func WineDependencies() []string {
	return []string{
		Country{}.TableName(),
		Region{}.TableName(),
		City{}.TableName(),
		Log{}.TableName(),
	}
}

// TableNames returns table names of models. It panics on a model
// that does not implement Tabler, model lists are built in code.
func TableNames(models []any) []string {
	res := make([]string, 0, len(models))
	for _, v := range models {
		t, ok := v.(Tabler)
		if !ok {
			panic(fmt.Sprintf("schema: model %T has no TableName", v))
		}
		res = append(res, t.TableName())
	}
	return res
}
