package handler

import (
	"strings"

	"dealfinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/mssola/useragent"
)

// clientInfo describes the caller of the current request for analytic events.
func clientInfo(c echo.Context) entity.ClientInfo {
	req := c.Request()
	info := parseUserAgent(req.UserAgent())
	info.IP = c.RealIP()
	info.Referer = req.Referer()

	return info
}

func parseUserAgent(raw string) entity.ClientInfo {
	if strings.TrimSpace(raw) == "" {
		return entity.ClientInfo{Device: entity.DeviceOther}
	}

	ua := useragent.New(raw)
	browser, _ := ua.Browser()

	return entity.ClientInfo{
		Device:  deviceType(ua),
		Browser: browser,
		OS:      ua.OSInfo().Name,
	}
}

// deviceType splits the parser's mobile flag into phones and tablets. Android
// tablets omit the "Mobile" token and iPads report their own platform.
func deviceType(ua *useragent.UserAgent) entity.DeviceType {
	raw := ua.UA()

	switch {
	case ua.Bot() || ua.OS() == "":
		return entity.DeviceOther
	case ua.Platform() == "iPad" || strings.Contains(raw, "Tablet"),
		ua.OSInfo().Name == "Android" && !strings.Contains(raw, "Mobile"):
		return entity.DeviceTablet
	case ua.Mobile():
		return entity.DeviceMobile
	default:
		return entity.DeviceDesktop
	}
}
