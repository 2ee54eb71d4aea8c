package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconGroup       = "\U000F0849" // 󰡉
	IconVerified    = "\U000F0565" // 󰕥
	IconVerifiedNot = "\U000F099C" // 󰦜
	IconPhone       = "\uf095"     // 
	IconMegaphone   = "\U000F00E6" // 󰃦
	IconBadge       = "\uf005"     // 
	IconSearch      = "\uf002"     // 
	IconDownload    = "\uf019"     // 
	IconNotifyInfo  = "\uf05a"     // 
	IconNotifyError = "\uf057"     // 
)

var systemIcons = map[string]string{
	"group":        IconGroup,
	"verified":     IconVerified,
	"verified-not": IconVerifiedNot,
	"phone":        IconPhone,
}

// SystemIcon returns the glyph for a system message icon name.
func SystemIcon(name string) string {
	if icon, ok := systemIcons[name]; ok {
		return icon
	}
	return "•"
}
