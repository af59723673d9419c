package platform

import (
	"fmt"
	"strings"
)

// appleScript builds the osascript program that posts a notification.
// Notification Center has no per-call icon, so the drawing is named in the
// subtitle instead.
func appleScript(title, body string, opts Options) string {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	if icon := opts.icon(); icon != "" {
		script += fmt.Sprintf(" subtitle %q", lastElem(icon))
	}
	return script
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell program that shows a toast. A template
// with an image is used when the drawing can be shown.
func toastScript(title, body string, opts Options) string {
	var sb strings.Builder
	tmpl := "ToastText02"
	icon := opts.icon()
	if icon != "" {
		tmpl = "ToastImageAndText02"
	}
	sb.WriteString("[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; ")
	fmt.Fprintf(&sb, "$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); ", tmpl)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, "$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(title))
	fmt.Fprintf(&sb, "$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; ", psQuote(body))
	if icon != "" {
		fmt.Fprintf(&sb, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString("$toast = [Windows.UI.Notifications.ToastNotification]::new($template); ")
	if ms := opts.timeoutMillis(); ms > 0 {
		fmt.Fprintf(&sb, "$toast.ExpirationTime = [DateTimeOffset]::Now.AddMilliseconds(%d); ", ms)
	}
	fmt.Fprintf(&sb, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);", psQuote(opts.appName()))
	return sb.String()
}

func lastElem(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
