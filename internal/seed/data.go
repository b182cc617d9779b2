package seed

import "github.com/coastalgraphics/estimator/internal/catalog"

// stockCategories is the shop's cost sheet: what we pay the vendor per square
// foot, by material. Seeded once and then maintained through the database.
var stockCategories = []catalog.Category{
	{
		ID:   "pvc_vinyl",
		Name: "PVC Vinyl",
		Items: []catalog.Item{
			{ID: "mesh_7030", SKU: "MESH7030126", Name: "70/30 Mesh", CostPerSqFt: 4.25},
			{ID: "banner_13oz", SKU: "MBV13126", Name: "13 oz Banner", CostPerSqFt: 4.25},
			{ID: "banner_18oz_double_sided", SKU: "BO18OZ126", Name: "18oz Double Sided Banner", CostPerSqFt: 7.23},
		},
	},
	{
		ID:   "adhesive_backed_vinyl",
		Name: "Adhesive Backed Vinyl",
		Items: []catalog.Item{
			{ID: "standard_decal_matte_lam", SKU: "C4ABV60", Name: "Standard Decal with Matte Lam", CostPerSqFt: 5.10},
			{ID: "gf_matte_lam", SKU: "GFABV54", Name: "General Formulations With Matte Lam", CostPerSqFt: 5.95},
			{ID: "window_perf", SKU: "WP703054", Name: "Window Perf", CostPerSqFt: 6.80},
			{ID: "3m_ij180_8520_lam", SKU: "IJ180C", Name: "3M-IJ180 with 8520 Lam", CostPerSqFt: 7.23},
			{ID: "multigrip", SKU: "MG48", Name: "Multigrip", CostPerSqFt: 7.65},
			{ID: "brick_adhesive_with_lam", SKU: "SG852454", Name: "Brick Adhesive Vinyl with Lam", CostPerSqFt: 9.35},
			{ID: "dusted_crystal", SKU: "DC772531448", Name: "Dusted Crystal", CostPerSqFt: 10.20},
			{ID: "optically_clear_glass", SKU: "GAOPT154", Name: "Optically Clear Glass Material", CostPerSqFt: 11.90},
		},
	},
	{
		ID:   "rigid_board",
		Name: "Rigid Board",
		Items: []catalog.Item{
			{ID: "coroplast", SKU: "CORO4896", Name: "Coroplast", CostPerSqFt: 5.10},
			{ID: "styrene_060", SKU: "STY0604896", Name: ".060 Styrene", CostPerSqFt: 5.95},
			{ID: "pvc_2mm_poster_program", SKU: "PVC2MMW", Name: `2MM PVC (Poster Program / 22" x 28")`, CostPerSqFt: 5.95},
			{ID: "foamcore_3_16", SKU: "FC316W4896", Name: "3/16 Foamcore", CostPerSqFt: 7.65},
			{ID: "pvc_3mm_white", SKU: "3MMWPVC4896", Name: "3MM PVC White", CostPerSqFt: 8.50},
			{ID: "pvc_3mm_black", SKU: "3MMBPVC4896", Name: "3MM PVC Black", CostPerSqFt: 9.35},
			{ID: "gatorboard_3_16_white", SKU: "GB316W4896", Name: "3/16 Gatorboard White", CostPerSqFt: 10.20},
			{ID: "gatorboard_3_16_black", SKU: "GB316B4896", Name: "3/16 Gatorboard Black", CostPerSqFt: 11.26},
			{ID: "pvc_6mm_white", SKU: "6MMWPVC4896", Name: "6MM PVC White", CostPerSqFt: 11.90},
			{ID: "gatorboard_half_black", SKU: "GB12W4896", Name: "1/2 Gatorboard Black", CostPerSqFt: 11.90},
			{ID: "diabond", SKU: "DB3MMW4896", Name: "Diabond", CostPerSqFt: 12.75},
			{ID: "pvc_6mm_black", SKU: "6MMBPVC4896", Name: "6MM PVC Black", CostPerSqFt: 13.18},
			{ID: "gatorboard_half_white", SKU: "GB12B4896", Name: "1/2 Gatorboard White", CostPerSqFt: 13.60},
		},
	},
	{
		ID:   "backlit_film",
		Name: "Backlit Film",
		Items: []catalog.Item{
			{ID: "optilux_backlight_film", SKU: "OPTIFLM54", Name: "Optilux Backlight Film", CostPerSqFt: 6.80},
		},
	},
	{
		ID:   "dye_sublimated_fabric",
		Name: "Dye Sublimated Fabric",
		Items: []catalog.Item{
			{ID: "flag_fabric_ss", SKU: "DSFLAGSS126", Name: "Flag Fabric (SS Printing)", CostPerSqFt: 7.65},
			{ID: "stretch_4_way", SKU: "DS4WAY126", Name: "4 Way Stretch", CostPerSqFt: 8.50},
			{ID: "black_back_fabric", SKU: "DSBB126", Name: "Black Back Fabric", CostPerSqFt: 8.50},
			{ID: "flag_fabric_ds", SKU: "DSFLAGDS126", Name: "Flag Fabric (DS Printing)", CostPerSqFt: 11.90},
		},
	},
}
