package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyVideoList        = "video_list"
	KeyBack             = "back"
	KeyPrevious         = "previous"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyNext             = "next"
	KeyRestart          = "restart"
	KeyVolume           = "volume"
	KeySpeed            = "speed"
	KeyMode             = "mode"
	KeyModeLoop         = "mode_loop"
	KeyModeSequential   = "mode_sequential"
	KeyModeRandom       = "mode_random"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyOpenVideoFolder  = "open_video_folder"
	KeyVideoDirectory   = "video_directory"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyNoPlayableVideos = "no_playable_videos"
	KeyPlaybackError    = "playback_error"
	KeyNothingPlaying   = "nothing_playing"
	KeyFullscreenHint   = "fullscreen_hint"
)

const fallbackLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: fallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is translated.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the language part of the OS locale, e.g. "fr"
func systemLanguage() string {
	locale := string(lang.SystemLocale())
	code, _, _ := strings.Cut(locale, "-")
	if code == "" {
		return fallbackLanguage
	}
	return strings.ToLower(code)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[fallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

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
		"fr": "Français",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Video Player",
		KeyVideoList:        "Video list",
		KeyBack:             IconBack + " Back",
		KeyPrevious:         "Previous",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyNext:             "Next",
		KeyRestart:          "Restart",
		KeyVolume:           "Volume:",
		KeySpeed:            "Speed:",
		KeyMode:             "Mode:",
		KeyModeLoop:         "Loop",
		KeyModeSequential:   "Next",
		KeyModeRandom:       "Random",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyOpenVideoFolder:  "Open video folder",
		KeyVideoDirectory:   "Video Directory",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyNoPlayableVideos: "None of the videos could be found on disk.",
		KeyPlaybackError:    "Playback error",
		KeyNothingPlaying:   "Nothing playing",
		KeyFullscreenHint:   "Double-click to toggle fullscreen",
	}

	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "Lecteur Vidéo",
		KeyVideoList:        "Liste des vidéos",
		KeyBack:             IconBack + " Retour",
		KeyPrevious:         "Précédent",
		KeyPlay:             "Lecture",
		KeyPause:            "Pause",
		KeyNext:             "Suivant",
		KeyRestart:          "Recommencer",
		KeyVolume:           "Volume :",
		KeySpeed:            "Vitesse :",
		KeyMode:             "Mode :",
		KeyModeLoop:         "Boucle",
		KeyModeSequential:   "Suivant",
		KeyModeRandom:       "Aléatoire",
		KeySettings:         "Paramètres",
		KeyFile:             "Fichier",
		KeyLanguage:         "Langue",
		KeyOpenVideoFolder:  "Ouvrir le dossier des vidéos",
		KeyVideoDirectory:   "Dossier des vidéos",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeyBrowse:           "Parcourir",
		KeySettingsSaved:    "Paramètres enregistrés !",
		KeyNoPlayableVideos: "Aucune vidéo n'a été trouvée sur le disque.",
		KeyPlaybackError:    "Erreur de lecture",
		KeyNothingPlaying:   "Aucune lecture",
		KeyFullscreenHint:   "Double-cliquez pour le plein écran",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Видеоплеер",
		KeyVideoList:        "Список видео",
		KeyBack:             IconBack + " Назад",
		KeyPrevious:         "Предыдущее",
		KeyPlay:             "Пуск",
		KeyPause:            "Пауза",
		KeyNext:             "Следующее",
		KeyRestart:          "Сначала",
		KeyVolume:           "Громкость:",
		KeySpeed:            "Скорость:",
		KeyMode:             "Режим:",
		KeyModeLoop:         "Повтор",
		KeyModeSequential:   "Далее",
		KeyModeRandom:       "Случайно",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyOpenVideoFolder:  "Открыть папку видео",
		KeyVideoDirectory:   "Папка видео",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyNoPlayableVideos: "Ни одно видео не найдено на диске.",
		KeyPlaybackError:    "Ошибка воспроизведения",
		KeyNothingPlaying:   "Ничего не воспроизводится",
		KeyFullscreenHint:   "Двойной щелчок: полный экран",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Reprodutor de Vídeo",
		KeyVideoList:        "Lista de vídeos",
		KeyBack:             IconBack + " Voltar",
		KeyPrevious:         "Anterior",
		KeyPlay:             "Reproduzir",
		KeyPause:            "Pausar",
		KeyNext:             "Próximo",
		KeyRestart:          "Recomeçar",
		KeyVolume:           "Volume:",
		KeySpeed:            "Velocidade:",
		KeyMode:             "Modo:",
		KeyModeLoop:         "Repetir",
		KeyModeSequential:   "Próximo",
		KeyModeRandom:       "Aleatório",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyOpenVideoFolder:  "Abrir pasta de vídeos",
		KeyVideoDirectory:   "Diretório de Vídeos",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyNoPlayableVideos: "Nenhum vídeo foi encontrado no disco.",
		KeyPlaybackError:    "Erro de reprodução",
		KeyNothingPlaying:   "Nada em reprodução",
		KeyFullscreenHint:   "Clique duplo para tela cheia",
	}
}
