package app

// User-facing notification texts shown by the editors.
const (
	NoticePlatformAdded   = "Платформа добавлена"
	NoticePlatformUpdated = "Платформа обновлена"
	NoticePlatformDeleted = "Платформа удалена"
	NoticeConfirmDelete   = "Удалить эту платформу?"

	NoticeLoadFailed   = "Не удалось загрузить список"
	NoticeSaveFailed   = "Не удалось сохранить изменения"
	NoticeSaveConflict = "Список изменён в другом месте, обновите данные"
	NoticeDraftInvalid = "Заполните оба названия"

	NoticeServerDown = "Сервер настроек недоступен"
	NoticeServerUp   = "Связь с сервером настроек восстановлена"
)
