package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyRefresh           = "refresh"
	KeyRetry             = "retry"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyLoading           = "loading"
	KeyLoadError         = "load_error"
	KeyNoProducts        = "no_products"
	KeyNoMatches         = "no_matches"
	KeyClearSearch       = "clear_search"
	KeyProductDetails    = "product_details"
	KeyPrice             = "price"
	KeyClose             = "close"
	KeyCatalogURL        = "catalog_url"
	KeyFetchTimeout      = "fetch_timeout"
	KeyGridColumns       = "grid_columns"
	KeyCurrencySymbol    = "currency_symbol"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Catalog Browser",
		KeySearchPlaceholder: "Search products by name...",
		KeyRefresh:           "Refresh",
		KeyRetry:             "Try Again",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyLoading:           "Loading products...",
		KeyLoadError:         "Unable to load products. Please try again.",
		KeyNoProducts:        "No products available",
		KeyNoMatches:         "No products match your search",
		KeyClearSearch:       "Clear the search to see all products",
		KeyProductDetails:    "Product Details",
		KeyPrice:             "Price",
		KeyClose:             "Close",
		KeyCatalogURL:        "Catalog URL",
		KeyFetchTimeout:      "Fetch Timeout (seconds)",
		KeyGridColumns:       "Grid Columns",
		KeyCurrencySymbol:    "Currency Symbol",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Каталог товаров",
		KeySearchPlaceholder: "Поиск товаров по названию...",
		KeyRefresh:           "Обновить",
		KeyRetry:             "Повторить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyLoading:           "Загрузка товаров...",
		KeyLoadError:         "Не удалось загрузить товары. Попробуйте ещё раз.",
		KeyNoProducts:        "Нет доступных товаров",
		KeyNoMatches:         "По вашему запросу ничего не найдено",
		KeyClearSearch:       "Очистите поиск, чтобы увидеть все товары",
		KeyProductDetails:    "О товаре",
		KeyPrice:             "Цена",
		KeyClose:             "Закрыть",
		KeyCatalogURL:        "Адрес каталога",
		KeyFetchTimeout:      "Таймаут загрузки (сек.)",
		KeyGridColumns:       "Колонок в сетке",
		KeyCurrencySymbol:    "Символ валюты",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Catálogo de Produtos",
		KeySearchPlaceholder: "Buscar produtos por nome...",
		KeyRefresh:           "Atualizar",
		KeyRetry:             "Tentar Novamente",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyLoading:           "Carregando produtos...",
		KeyLoadError:         "Não foi possível carregar os produtos. Tente novamente.",
		KeyNoProducts:        "Nenhum produto disponível",
		KeyNoMatches:         "Nenhum produto corresponde à sua busca",
		KeyClearSearch:       "Limpe a busca para ver todos os produtos",
		KeyProductDetails:    "Detalhes do Produto",
		KeyPrice:             "Preço",
		KeyClose:             "Fechar",
		KeyCatalogURL:        "URL do Catálogo",
		KeyFetchTimeout:      "Tempo Limite (segundos)",
		KeyGridColumns:       "Colunas da Grade",
		KeyCurrencySymbol:    "Símbolo da Moeda",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
