package advisory

// builtin holds the records shipped with the binary. Keys must match the
// label names produced by the model exactly.
var builtin = Table{
	"E-waste": {
		Description: "Sampah elektronik berbahaya. Jangan buang di tempat sampah biasa. Bawa ke drop box e-waste.",
		BinColor:    "Merah (B3)",
		Recyclable:  "Ya, melalui fasilitas khusus B3",
		Impact:      "Pelepasan zat beracun (merkuri, timbal, kadmium) ke tanah dan air. Zat ini mencemari rantai makanan dan sangat berbahaya bagi kesehatan manusia. (Referensi: UNEP/Basel Convention)",
	},
	"Glass": {
		Description: "Kaca bisa didaur ulang tanpa batas. Pastikan tidak pecah saat dibuang agar aman bagi petugas.",
		BinColor:    "Kuning (Anorganik)",
		Recyclable:  "Ya",
		Impact:      "Tidak terurai (inert) dan memenuhi TPA. Pecahan kaca dapat melukai hewan dan petugas, serta berpotensi menyebabkan kebakaran karena efek lensa. (Referensi: Ilmu Lingkungan Material)",
	},
	"Organic Waste": {
		Description: "Sampah organik (sisa makanan/daun). Bagus untuk dijadikan kompos.",
		BinColor:    "Hijau (Organik)",
		Recyclable:  "Ya (Diolah menjadi kompos)",
		Impact:      "Dalam TPA, penguraian anaerobik menghasilkan gas **metana ($CH_4$)**, yaitu gas rumah kaca yang 25 kali lebih kuat dari karbon dioksida ($CO_2$) dalam memerangkap panas. (Referensi: IPCC/Lembaga Penelitian Lingkungan)",
	},
	"Textiles": {
		Description: "Limbah tekstil seperti baju bekas. Bisa disumbangkan atau didaur ulang menjadi kain lap.",
		BinColor:    "Kuning (Anorganik)",
		Recyclable:  "Ya (Didaur ulang/Digunakan kembali)",
		Impact:      "Membutuhkan lahan TPA yang besar. Tekstil modern melepaskan **serat mikroplastik** saat terurai di lingkungan dan membutuhkan waktu puluhan hingga ratusan tahun. (Referensi: Studi Limbah Tekstil/Microplastic Research)",
	},
	"cardboard": {
		Description: "Kardus/Karton. Lipat hingga pipih sebelum dibuang untuk menghemat ruang. Bisa didaur ulang menjadi kertas.",
		BinColor:    "Biru (Kertas)",
		Recyclable:  "Ya",
		Impact:      "Memenuhi TPA dan penguraiannya di TPA juga dapat menghasilkan metana jika basah. Daur ulang kardus menghemat energi dan mengurangi penebangan pohon. (Referensi: WWF/Pusat Daur Ulang Kertas)",
	},
	"metal": {
		Description: "Logam/Kaleng. Cuci bersih sisa makanan sebelum dibuang ke tempat daur ulang.",
		BinColor:    "Kuning (Anorganik)",
		Recyclable:  "Ya",
		Impact:      "Logam membutuhkan waktu ratusan tahun untuk terurai. Logam yang berkarat dapat mencemari air tanah dan memerlukan ekstraksi sumber daya alam (penambangan) yang intensif energi. (Referensi: US Geological Survey/Ilmu Material)",
	},
	"paper": {
		Description: "Kertas. Pastikan kering dan tidak berminyak agar bisa didaur ulang.",
		BinColor:    "Biru (Kertas)",
		Recyclable:  "Ya",
		Impact:      "Menyumbang volume besar di TPA. Kegagalan mendaur ulang berarti peningkatan permintaan kayu dan energi untuk memproduksi kertas baru. (Referensi: Studi Konservasi Energi dan Sumber Daya Alam)",
	},
	"plastic": {
		Description: "Plastik butuh waktu lama terurai. Pisahkan botol dan gelas plastik untuk didaur ulang.",
		BinColor:    "Kuning (Anorganik)",
		Recyclable:  "Ya",
		Impact:      "Membutuhkan ratusan hingga ribuan tahun untuk terurai, mencemari lautan, dan terpecah menjadi **mikroplastik** yang masuk ke rantai makanan dan ekosistem. (Referensi: Jurnal Ilmu Kelautan/Plastics Pollution Coalition)",
	},
	"shoes": {
		Description: "Sepatu bekas. Jika masih layak pakai, sebaiknya didonasikan.",
		BinColor:    "Kuning (Anorganik)",
		Recyclable:  "Ya (Digunakan kembali/Daur ulang terbatas)",
		Impact:      "Terbuat dari material campuran kompleks (karet, kulit, plastik, busa) yang hampir mustahil terurai secara alami, sehingga menumpuk di TPA. (Referensi: Analisis Material Limbah Kompleks)",
	},
	"trash": {
		Description: "Sampah residu atau lainnya yang sulit didaur ulang. Buang ke tempat sampah umum.",
		BinColor:    "Abu-abu (Residu)",
		Recyclable:  "Tidak",
		Impact:      "Menyebabkan penumpukan di TPA, memerlukan lahan yang terus bertambah, dan menjadi sumber bau tidak sedap, serta lindi (air sampah) yang mencemari lingkungan. (Referensi: Pedoman Pengelolaan TPA)",
	},
}
