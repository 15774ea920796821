// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown by the
// terminal client. Keeping them in one place keeps the wording consistent
// between pages.
package app

const (
	// MsgServerUnavailable is shown when a request never reached the server
	// (connection refused, DNS failure, timeout).
	MsgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

	// MsgRequestFailed is shown when the server answered with an error that
	// carried no readable detail.
	MsgRequestFailed = "Запрос не выполнен"

	// MsgNotAuthenticated is shown when an action needs a session and none
	// is stored.
	MsgNotAuthenticated = "Требуется вход"

	// MsgSessionNotPersisted is shown when sign-in succeeded on the server
	// but the session file could not be written.
	MsgSessionNotPersisted = "Вход выполнен, но сессию не удалось сохранить"

	MsgAllFieldsRequired    = "Все поля обязательны"
	MsgEmailPasswordNeeded  = "Email и пароль обязательны"
	MsgEmailNeeded          = "Email обязателен"
	MsgPasswordsDoNotMatch  = "Пароли не совпадают"
	MsgPasswordTooShort     = "Пароль должен быть не короче 6 символов"
	MsgPasswordTooLong      = "Пароль слишком длинный"
	MsgResetTokenNeeded     = "Токен сброса обязателен"
	MsgSignedUp             = "Аккаунт создан. Войдите, используя email и пароль"
	MsgPasswordUpdated      = "Пароль обновлён. Войдите с новым паролем"
	MsgSessionExpired       = "Сессия истекла, войдите снова"
	MsgLoginRequired        = "Войдите, чтобы открыть личный кабинет"
	MsgLoggedOut            = "Вы вышли из аккаунта"
	MsgTokenCopied          = "Токен скопирован в буфер обмена"
	MsgNothingToCopy        = "Нечего копировать"
	MsgProfileRefreshFailed = "Не удалось обновить профиль"
)
