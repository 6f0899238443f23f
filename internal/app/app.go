package app

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppName     = "Clock App"
	AppID       = "com.dramoraframei.clockapp"
	Version     = "0.0.01"
	VersionType = "Pre-Alpha"
	Author      = "Dramora9879"
	RepoURL     = "https://github.com/DramoraFramei/Clock-App"
	License     = "All Rights Reserved"
)

// Icon иконка приложения (окно, трей, уведомления).
//
//go:embed icon.png
var Icon []byte

// IconResource та же иконка в виде ресурса fyne.
var IconResource = fyne.NewStaticResource("icon.png", Icon)
