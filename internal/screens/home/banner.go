package home

const bannerArt = `
 ███████╗███╗   ██╗ █████╗ ██████╗ ███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
 ██╔════╝████╗  ██║██╔══██╗██╔══██╗██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
 ███████╗██╔██╗ ██║███████║██████╔╝███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
 ╚════██║██║╚██╗██║██╔══██║██╔═══╝ ╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
 ███████║██║ ╚████║██║  ██║██║     ███████║   ██║   ╚██████╔╝██████╔╝   ██║
 ╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝     ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝`

// Banner returns the SNAPSTUDY banner art.
func Banner() string {
	return bannerArt
}
