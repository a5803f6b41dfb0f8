package chord

import "github.com/jsphweid/harmondrill/model"

type Stage string

const (
	StageSkipped   Stage = "skipped"
	StageSearched  Stage = "searched"
	StagePicked    Stage = "picked"
	StageExhausted Stage = "exhausted"
)

// SearchEvent reports search progress to an Observer. Only the fields that
// make sense for the stage are set.
type SearchEvent struct {
	Stage     Stage
	Selection model.Selection
	Category  model.Category
	Index     int
	Key       model.KeySignature
	Valid     int
	PoolSize  int
	Reason    string
}

// Observer receives search diagnostics; nil keeps the search silent.
type Observer func(SearchEvent)
