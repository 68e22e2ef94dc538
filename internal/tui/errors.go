// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package tui

import (
	"errors"

	"github.com/MarlyasDad/cheat-chat/internal/service"
)

func humanizeFatalError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidToken):
		return "Сервер не узнал токен.\nПроверьте файл с токеном или удалите его, чтобы зарегистрироваться заново."
	case errors.Is(err, service.ErrAttemptsExhausted):
		return "Не удалось восстановить соединение с сервером.\nОтсутствует сеть или Сервер недоступен."
	}

	return err.Error()
}
