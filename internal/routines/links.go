package routines

// productLinks maps catalog product names to purchase URLs. Keys mirror the
// ProductName column of ProductTable; lookups go through FindProductURL so
// minor name drift in model output still resolves.
var productLinks = map[string]string{
	"Cetaphil Gentle Skin Cleanser":                            "https://www.cetaphil.in/products/cleansers/gentle-skin-cleanser/8906005274105.html",
	"La Roche-Posay Toleriane Hydrating Gentle Cleanser":       "https://www.laroche-posay.us/our-products/face/face-wash/toleriane-hydrating-gentle-facial-cleanser-tolerianehydratinggentlefacialcleanser.html",
	"iS Clinical Cleansing Complex":                            "https://www.isclinical.com/products/cleansing-complex",
	"CeraVe Acne Control Cleanser":                             "https://www.cerave.com/skincare/cleansers/acne-salicylic-acid-cleanser",
	"La Roche-Posay Effaclar Medicated Gel Cleanser":           "https://www.laroche-posay.us/our-products/face/face-wash/effaclar-medicated-gel-cleanser-3337872411083.html",
	"CeraVe Foaming Facial Cleanser":                           "https://www.cerave.com/skincare/cleansers/foaming-facial-cleanser",
	"The Inkey List Bio-Active Ceramide Repairing Moisturizer": "https://eu.theinkeylist.com/products/bio-active-ceramide-moisturizer",
	"First Aid Beauty Ultra Repair Cream":                      "https://www.firstaidbeauty.com/products/ultra-repair-cream-intense-hydration",
	"SkinCeuticals Triple Lipid Restore 2:4:2":                 "https://www.dermstore.com/skinceuticals-triple-lipid-restore-2-4-2/11289199.html",
	"Neutrogena Hydro Boost Water Gel":                         "https://www.neutrogena.com/products/skincare/neutrogena-hydro-boost-water-gel-with-hyaluronic-acid/6811047.html",
	"La Roche-Posay Toleriane Double Repair (Matte)":           "https://www.laroche-posay.us/our-products/face/face-moisturizer/toleriane-double-repair-matte-face-moisturizer-spf-30-for-oily-skin-3337875782999.html",
	"Kiehl's Ultra Facial Cream":                               "https://go.shopmy.us/p-7740940",
	"CeraVe Hydrating Mineral Tinted Sunscreen SPF 30":         "https://go.shopmy.us/p-20673810",
	"EltaMD UV Clear Tinted SPF 46":                            "https://go.shopmy.us/p-20673792",
	"Isdin Eryfotona Actinica Mineral SPF 50+":                 "https://go.shopmy.us/p-20673789",
	"Supergoop! Unseen Sunscreen SPF 50":                       "https://supergoop.com/products/unseen-sunscreen-spf-50",
	"SkinCeuticals Physical Fusion UV Defense SPF 50":          "https://go.shopmy.us/p-20673803",
	"EltaMD UV Clear Tinted SPF 46 (for Moles / Nevi)":         "https://go.shopmy.us/p-20673792",
	"The Ordinary Salicylic Acid 2% Solution":                  "https://www.sephora.in/product/the-ordinary-salicylic-acid-2-solution-v-30ml",
	"Paula's Choice 2% BHA Liquid Exfoliant":                   "https://go.shopmy.us/p-1210792",
	"Differin Adapalene Gel 0.1%":                              "https://www.target.com/p/differin-acne-retinoid-treatment-gel-adapalene-0-1-15g/-/A-51346324",
	"The Ordinary Niacinamide 10% + Zinc 1%":                   "https://www.amazon.com/dp/B0BSD1M53T",
	"Naturium Azelaic Topical Acid 10%":                        "https://www.naturium.com/products/azelaic-topical-acid-10",
	"Paula's Choice 10% Azelaic Acid Booster":                  "https://go.shopmy.us/p-7432177",
	"CeraVe Resurfacing Retinol Serum":                         "https://myshlf.us/p-70344",
	"La Roche-Posay Retinol B3 Serum":                          "https://www.laroche-posay.us/our-products/face/face-serum/retinol-b3-pure-retinol-serum-3337875694469.html",
	"Kiehl's Retinol Skin-Renewing Daily Micro-Dose Serum":     "https://www.kiehls.com/skincare/face-serums/micro-dose-anti-aging-retinol-serum-with-ceramides-and-peptide/WW0154KIE.html",
	"Paula's Choice Clinical 1% Retinol Treatment":             "https://www.paulaschoice.com/clinical-1pct-retinol-treatment/801.html",
	"SkinCeuticals Retinol 1.0":                                "https://www.skinceuticals.com/skincare/retinol-creams/retinol-1.0/S70.html",
	"Naturium Vitamin C Complex Serum":                         "https://go.shopmy.us/p-52901",
	"The INKEY List Tranexamic Acid Serum":                     "https://eu.theinkeylist.com/products/tranexamic-acid-serum",
	"SkinCeuticals C E Ferulic":                                "https://www.skinceuticals.com/c-e-ferulic-with-15-l-ascorbic-acid/S17.html",
	"The Ordinary Hyaluronic Acid 2% + B5":                     "https://theordinary.com/en-in/hyaluronic-acid-2-b5-serum-with-ceramides-100637.html",
	"CeraVe Hydrating Hyaluronic Acid Serum":                   "https://www.cerave.com/skincare/facial-serums/hydrating-hyaluronic-acid-serum",
	"The Inkey List Caffeine Eye Cream":                        "https://uk.theinkeylist.com/products/caffeine-eye-cream",
	"CeraVe Eye Repair Cream":                                  "https://www.cerave.com/skincare/moisturizers/eye-repair-cream",
	"Charlotte Tilbury Cryo-Recovery Eye Serum":                "https://www.johnlewis.com/charlotte-tilbury-cryo-recovery-eye-serum-15ml/p5723788",
	"Neutrogena Rapid Wrinkle Repair Eye Cream":                "https://www.neutrogena.com/products/skincare/neutrogena-rapid-wrinkle-repair-retinol-eye-cream/6802123",
	"RoC Retinol Correxion Eye Cream":                          "https://www.rocskincare.com/products/retinol-correxion-line-smoothing-eye-cream",
	"La Roche-Posay Redermic R Retinol Eye Cream":              "https://www.dermstore.com/la-roche-posay-redermic-r-eyes-retinol-eye-cream/11130283.html",
	"Medik8 Crystal Retinal Ceramide Eye":                      "https://www.medik8.com/products/crystal-retinal-ceramide-eye-3",
	"CeraVe Renewing Vitamin C Eye Cream":                      "https://www.cerave.com/skincare/moisturizers/facial-moisturizers/skin-renewing-vitamin-c-eye-cream",
	"Summer Fridays Light Aura Vitamin C + Peptide Eye Cream":  "https://summerfridays.com/products/light-aura-vitamin-c-peptide-eye-cream",
	"Tatcha The Brightening Eye Cream":                         "https://www.spacenk.com/uk/skincare/eye-care/eye-creams/the-brightening-eye-cream-MUK200032906.html",
}
