package store_models

// QuizStep is one catalog entry. The wire shape (data + step) matches what
// the frontend wizard consumes, so steps are served verbatim.
type QuizStep struct {
	Data StepData `json:"data"`
	Step int      `json:"step"`
}

type StepData struct {
	BgImgURL string       `json:"bg_img_url"`
	HasNext  bool         `json:"has_next"`
	Options  []StepOption `json:"options"`
	Prompt   string       `json:"prompt"`
}

type StepOption struct {
	ImgURL string `json:"img_url"`
	Name   string `json:"name"`
}
