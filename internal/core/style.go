package core

// StyleSet is an ordered list of class tokens understood by the theme.
type StyleSet []string

var actionBase = StyleSet{"px-4", "py-2", "rounded-lg", "font-semibold", "transition-all", "duration-300"}

var linkLayout = StyleSet{"inline-block", "text-center"}

var variantStyles = map[Variant]StyleSet{
	VariantOutline: {"border", "border-cyan-400", "bg-transparent", "text-cyan-300", "hover:bg-cyan-900/30"},
	VariantPrimary: {"bg-gradient-to-r", "from-cyan-500", "to-purple-600", "text-white", "hover:from-cyan-400", "hover:to-purple-500", "shadow-lg"},
}

// VariantStyle returns a copy of the style set for v. Unknown variants fall
// back to primary; validation rejects them before rendering.
func VariantStyle(v Variant) StyleSet {
	set, ok := variantStyles[v]
	if !ok {
		set = variantStyles[VariantPrimary]
	}
	return append(StyleSet(nil), set...)
}

var (
	surfaceBase        = StyleSet{"bg-white/10", "backdrop-blur-md", "rounded-2xl", "shadow-xl", "border", "border-white/20", "hover:scale-[1.03]", "transition-transform", "duration-300"}
	surfaceContentBase = StyleSet{"p-6"}
)

var (
	pageStyle    = StyleSet{"relative", "min-h-screen", "font-sans", "text-gray-100", "overflow-x-hidden"}
	heroStyle    = StyleSet{"flex", "flex-col", "items-center", "justify-center", "text-center", "py-12", "sm:py-16", "md:py-24", "mx-auto", "w-full", "max-w-4xl", "px-4"}
	sectionStyle = StyleSet{"mb-10", "sm:mb-16", "px-4"}
	headingStyle = StyleSet{"text-xl", "sm:text-2xl", "font-semibold", "mb-4", "flex", "items-center", "gap-2"}

	// Column count is display-only; it never reorders cells.
	skillGridStyle = StyleSet{"grid", "grid-cols-2", "sm:grid-cols-3", "md:grid-cols-4", "gap-4", "text-sm"}
	cardGridStyle  = StyleSet{"grid", "grid-cols-1", "md:grid-cols-2", "gap-8", "sm:gap-10"}

	skillCellStyle = StyleSet{"rounded-xl", "flex", "items-center", "gap-3", "p-3", "sm:p-4"}
	actionRowStyle = StyleSet{"flex", "flex-col", "sm:flex-row", "gap-3", "sm:gap-4"}
	bulletStyle    = StyleSet{"list-disc", "pl-5", "text-sm", "mb-4"}
)
