package models

type Shoe struct {
	ID        int64   `json:"id"`
	Brand     string  `json:"brand"`
	ModelName string  `json:"model_name"`
	Price     float64 `json:"price"`
	ImgURL    string  `json:"img_url,omitempty"`
}
