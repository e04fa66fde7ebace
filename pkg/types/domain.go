package types

// Advisory is the static disposal guidance shown for a predicted label.
type Advisory struct {
	// Short description of the waste type and how to handle it.
	// example: Logam/Kaleng. Cuci bersih sisa makanan sebelum dibuang ke tempat daur ulang.
	Description string `json:"deskripsi" yaml:"deskripsi" toml:"deskripsi" example:"Logam/Kaleng. Cuci bersih sisa makanan sebelum dibuang ke tempat daur ulang."`
	// Colour of the bin the item belongs in.
	// example: Kuning (Anorganik)
	BinColor string `json:"tong_warna" yaml:"tong_warna" toml:"tong_warna" example:"Kuning (Anorganik)"`
	// Whether and how the item can be recycled.
	// example: Ya
	Recyclable string `json:"dapat_didaur_ulang" yaml:"dapat_didaur_ulang" toml:"dapat_didaur_ulang" example:"Ya"`
	// Environmental impact when the item is not managed.
	Impact string `json:"dampak_jika_tidak_diolah" yaml:"dampak_jika_tidak_diolah" toml:"dampak_jika_tidak_diolah"`
}

// LabelScore pairs a class label with its probability.
type LabelScore struct {
	// example: plastic
	Label string `json:"label" example:"plastic"`
	// example: 0.93
	Probability float32 `json:"probability" example:"0.93"`
}
