package i18n

// Static UI string table for the console. English is the fallback: a key
// missing from the requested language resolves through "en", and an
// unknown key comes back as-is so a gap is visible instead of blank.

const fallbackLanguage = "en"

var translations = map[string]map[string]string{
	"sr": {
		"house":     "Kuća",
		"apartment": "Stan",
		"office":    "Kancelarija",

		"sale": "Prodaja",
		"rent": "Izdavanje",

		"ready":  "Gotovo",
		"new":    "Novo",
		"shared": "Zajedničko vlasništvo",

		"propertyType": "Vrsta nekretnine",
		"dealType":     "Vrsta transakcije",
		"city":         "Grad",
		"district":     "Opština",
		"address":      "Adresa",
		"floorNumber":  "Sprat",
		"totalFloors":  "Ukupno spratova",
		"livingArea":   "Stambena površina",
		"rooms":        "Sobe",
		"bedrooms":     "Spavaće sobe",
		"bathrooms":    "Kupatila",
		"plotSize":     "Površina placa",
		"price":        "Cena",
		"heatingType":  "Grejanje",
		"registered":   "Uknjiženo",
		"waterSupply":  "Vodovod",
		"sewage":       "Kanalizacija",

		"create": "Napravi",
		"edit":   "Izmeni",
		"save":   "Sačuvaj",
		"cancel": "Otkaži",
		"delete": "Obriši",
		"back":   "Nazad",
		"search": "Pretraga",
		"filter": "Filter",
		"apply":  "Primeni",
		"reset":  "Resetuj",

		"basicInfo":       "Osnovne informacije",
		"propertyDetails": "Detalji nekretnine",
		"location":        "Lokacija",
		"features":        "Karakteristike",
		"additionalInfo":  "Dodatne informacije",
		"ownerInfo":       "Informacije o vlasniku",

		"dashboard":      "Kontrolna tabla",
		"properties":     "Nekretnine",
		"addProperty":    "Dodaj nekretninu",
		"editProperty":   "Izmeni nekretninu",
		"exportToSheets": "Izvoz u Excel",
		"active":         "Aktivno",
		"inactive":       "Neaktivno",

		"login":  "Prijava",
		"logout": "Odjava",
		"home":   "Početna",

		"currency":      "€",
		"pricePerMonth": "€/mesečno",
		"squareMeters":  "m²",

		"loading":   "Učitavanje...",
		"noResults": "Nema rezultata",
		"error":     "Greška",

		"files":           "Fajlovi",
		"fileType":        "Tip fajla",
		"image":           "Slika",
		"video":           "Video",
		"document":        "Dokument",
		"publiclyVisible": "Javno dostupno",
		"selectFile":      "Izaberite fajl",
		"uploading":       "Otpremanje...",
		"upload":          "Otpremi",
		"uploadedFiles":   "Otpremljeni fajlovi",
		"public":          "Javno",
		"private":         "Privatno",
		"finish":          "Završi",
	},
	"en": {
		"house":     "House",
		"apartment": "Apartment",
		"office":    "Office",

		"sale": "Sale",
		"rent": "Rent",

		"ready":  "Ready",
		"new":    "New",
		"shared": "Shared ownership",

		"propertyType": "Property type",
		"dealType":     "Deal type",
		"city":         "City",
		"district":     "District",
		"address":      "Address",
		"floorNumber":  "Floor",
		"totalFloors":  "Total floors",
		"livingArea":   "Living area",
		"rooms":        "Rooms",
		"bedrooms":     "Bedrooms",
		"bathrooms":    "Bathrooms",
		"plotSize":     "Plot size",
		"price":        "Price",
		"heatingType":  "Heating",
		"registered":   "Registered",
		"waterSupply":  "Water supply",
		"sewage":       "Sewage",

		"create": "Create",
		"edit":   "Edit",
		"save":   "Save",
		"cancel": "Cancel",
		"delete": "Delete",
		"back":   "Back",
		"search": "Search",
		"filter": "Filter",
		"apply":  "Apply",
		"reset":  "Reset",

		"basicInfo":       "Basic information",
		"propertyDetails": "Property details",
		"location":        "Location",
		"features":        "Features",
		"additionalInfo":  "Additional information",
		"ownerInfo":       "Owner information",

		"dashboard":      "Dashboard",
		"properties":     "Properties",
		"addProperty":    "Add property",
		"editProperty":   "Edit property",
		"exportToSheets": "Export to Excel",
		"active":         "Active",
		"inactive":       "Inactive",

		"login":  "Login",
		"logout": "Logout",
		"home":   "Home",

		"currency":      "€",
		"pricePerMonth": "€/month",
		"squareMeters":  "m²",

		"loading":   "Loading...",
		"noResults": "No results found",
		"error":     "Error",

		"files":           "Files",
		"fileType":        "File type",
		"image":           "Image",
		"video":           "Video",
		"document":        "Document",
		"publiclyVisible": "Publicly visible",
		"selectFile":      "Select file",
		"uploading":       "Uploading...",
		"upload":          "Upload",
		"uploadedFiles":   "Uploaded files",
		"public":          "Public",
		"private":         "Private",
		"finish":          "Finish",
	},
	"ru": {
		"house":     "Дом",
		"apartment": "Квартира",
		"office":    "Офис",

		"sale": "Продажа",
		"rent": "Аренда",

		"ready":  "Готово",
		"new":    "Новое",
		"shared": "Долевая собственность",

		"propertyType": "Тип недвижимости",
		"dealType":     "Тип сделки",
		"city":         "Город",
		"district":     "Район",
		"address":      "Адрес",
		"floorNumber":  "Этаж",
		"totalFloors":  "Всего этажей",
		"livingArea":   "Жилая площадь",
		"rooms":        "Комнаты",
		"bedrooms":     "Спальни",
		"bathrooms":    "Ванные",
		"plotSize":     "Площадь участка",
		"price":        "Цена",
		"heatingType":  "Отопление",
		"registered":   "Зарегистрировано",
		"waterSupply":  "Водоснабжение",
		"sewage":       "Канализация",

		"create": "Создать",
		"edit":   "Изменить",
		"save":   "Сохранить",
		"cancel": "Отмена",
		"delete": "Удалить",
		"back":   "Назад",
		"search": "Поиск",
		"filter": "Фильтр",
		"apply":  "Применить",
		"reset":  "Сбросить",

		"basicInfo":       "Основная информация",
		"propertyDetails": "Детали недвижимости",
		"location":        "Расположение",
		"features":        "Характеристики",
		"additionalInfo":  "Дополнительная информация",
		"ownerInfo":       "Информация о владельце",

		"dashboard":      "Панель управления",
		"properties":     "Недвижимость",
		"addProperty":    "Добавить объект",
		"editProperty":   "Изменить объект",
		"exportToSheets": "Экспорт в Excel",
		"active":         "Активно",
		"inactive":       "Неактивно",

		"login":  "Вход",
		"logout": "Выход",
		"home":   "Главная",

		"currency":      "€",
		"pricePerMonth": "€/месяц",
		"squareMeters":  "м²",

		"loading":   "Загрузка...",
		"noResults": "Результаты не найдены",
		"error":     "Ошибка",

		"files":           "Файлы",
		"fileType":        "Тип файла",
		"image":           "Изображение",
		"video":           "Видео",
		"document":        "Документ",
		"publiclyVisible": "Публично доступно",
		"selectFile":      "Выберите файл",
		"uploading":       "Загрузка...",
		"upload":          "Загрузить",
		"uploadedFiles":   "Загруженные файлы",
		"public":          "Публичный",
		"private":         "Приватный",
		"finish":          "Завершить",
	},
}

// T resolves a display string for the given language and key.
func T(language, key string) string {
	if m, ok := translations[language]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := translations[fallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Languages returns the configured language codes in the order the record
// editor initializes detail rows.
func Languages() []string {
	return []string{"sr", "en", "ru"}
}

// Supported reports whether the language has a translation table.
func Supported(language string) bool {
	_, ok := translations[language]
	return ok
}
