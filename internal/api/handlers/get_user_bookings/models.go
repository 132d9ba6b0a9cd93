package get_user_bookings

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/fieldmax/booking-service/internal/domain"
)

var (
	// errMixedPagination возвращается при смешении параметров двух режимов пагинации
	errMixedPagination = errors.New("mixed pagination parameters")

	// errInvalidPagination возвращается при нечисловых значениях параметров
	errInvalidPagination = errors.New("invalid pagination parameters")
)

// ParsePageRequest разбирает query-параметры пагинации в размеченный вариант
// Поддерживаются два режима:
//   - постраничный: ?page=1&limit=20
//   - курсорный:    ?take=20&cursor=<id последнего элемента>
//
// Смешивать параметры режимов нельзя. Без параметров применяется
// постраничный режим с дефолтными значениями
func ParsePageRequest(query url.Values) (domain.PageRequest, error) {
	pageStr := query.Get("page")
	limitStr := query.Get("limit")
	takeStr := query.Get("take")
	cursorStr := query.Get("cursor")

	offsetParams := pageStr != "" || limitStr != ""
	cursorParams := takeStr != "" || cursorStr != ""

	if offsetParams && cursorParams {
		return domain.PageRequest{}, errMixedPagination
	}

	if cursorParams {
		take := domain.DefaultPageLimit
		if takeStr != "" {
			parsed, err := strconv.Atoi(takeStr)
			if err != nil {
				return domain.PageRequest{}, errInvalidPagination
			}
			take = parsed
		}

		var cursor *int64
		if cursorStr != "" {
			parsed, err := strconv.ParseInt(cursorStr, 10, 64)
			if err != nil || parsed <= 0 {
				return domain.PageRequest{}, errInvalidPagination
			}
			cursor = &parsed
		}

		return domain.CursorPage(take, cursor), nil
	}

	page := 1
	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			return domain.PageRequest{}, errInvalidPagination
		}
		page = parsed
	}

	limit := domain.DefaultPageLimit
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return domain.PageRequest{}, errInvalidPagination
		}
		limit = parsed
	}

	return domain.OffsetPage(page, limit), nil
}
