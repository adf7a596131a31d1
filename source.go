package posgrados

// DefaultBaseURL is the catalog section all program pages live under.
const DefaultBaseURL = "https://www.derecho.uba.ar/academica/posgrados"

// Source identifies one program's set of catalog pages. Each program
// has up to four pages under the base URL, derived from its key by
// fixed path suffixes. The list of sources is hand-curated
// configuration; nothing is discovered at runtime.
type Source struct {
	Key      string
	Category Category
}

// MainURL returns the program's main page URL.
func (s Source) MainURL(base string) string {
	return base + "/" + s.Key + ".php"
}

// PlanURL returns the program's curriculum page URL.
func (s Source) PlanURL(base string) string {
	return base + "/" + s.Key + "_plan.php"
}

// RequirementsURL returns the program's admission-requirements page URL.
func (s Source) RequirementsURL(base string) string {
	return base + "/" + s.Key + "_requisitos.php"
}

// ObjectivesURL returns the program's objectives page URL.
func (s Source) ObjectivesURL(base string) string {
	return base + "/" + s.Key + "_objetivos.php"
}

var maestriaKeys = []string{
	"mae_bases_culturales_de_los_derechos_fundamentales",
	"mae_der_adm_y_adm_publica",
	"mae_derecho_comercial",
	"mae_der_familia_inf_adole",
	"mae_der_trabajo",
	"mae_der_internacional_ddhh",
	"mae_der_int_privado",
	"mae_der_penal",
	"mae_derecho_privado",
	"mae_derecho_procesal_constitucional",
	"mae_derecho_tributario_y_financiero",
	"mae_der_eco",
	"mae_filosofia_derecho",
	"mae_gestion_participativa_de_conflictos",
	"mae_energia",
	"mae_magistratura",
	"mae_nuevas_tecnologias_de_la_traduccion",
	"mae_infanto_juveniles",
	"mae_rel_inter",
	"mae_trad_interpretacion",
	"mae_teoria-del-derecho",
}

var especializacionKeys = []string{
	"carr_esp_adm_justicia",
	"carr_esp_ases_empresas",
	"carr_esp_der_asesoria_juridica_de_universidades",
	"carr_esp_cibercrimen_y_prueba_digital",
	"carr_esp_deradminpub",
	"carr_esp_der_ambiental",
	"carr_esp_der_bancario",
	"carr_esp_der_constitucional",
	"carr_esp_der_danos",
	"carr_esp_derfamilia",
	"carr_esp_der_salud_y-resp_medica_e_institucional",
	"carr_esp_derlaboral",
	"carr_esp_der_informatico",
	"carr_esp_der_internacional_ddhh",
	"carr_esp_derecho_nuclear",
	"carr_esp_derpenal",
	"carr_esp_der_proc_civil",
	"carr_esp_recnaturales",
	"carr_esp_discapacidad_y_derechos",
	"carr_esp_elaboracion_normas",
	"carr_esp_reg_energetica",
	"carr_esp_infanto_juveniles",
	"carr_esp_ministerio-publico",
	"carr_esp_sistemas_procesales_orales",
}

// DefaultCatalog returns the full hand-curated program list, maestrías
// first, in the order scrape cycles iterate it. Store iteration order
// derives from this order, which makes retrieval tie-breaks stable.
func DefaultCatalog() []Source {
	sources := make([]Source, 0, len(maestriaKeys)+len(especializacionKeys))
	for _, key := range maestriaKeys {
		sources = append(sources, Source{Key: key, Category: CategoryMaestria})
	}
	for _, key := range especializacionKeys {
		sources = append(sources, Source{Key: key, Category: CategoryEspecializacion})
	}
	return sources
}
