package prompt

// VisionInstruction is the fixed request sent once per reference image.
// It asks the model for every styling detail the generation step needs
// to recreate the design without seeing the image itself.
const VisionInstruction = `Analyze this image in extreme detail for HTML/CSS recreation. Provide:
1. EXACT LAYOUT: Describe the precise layout structure (header, sections, columns, grid)
2. COLORS: List ALL colors used with EXACT hex codes:
   - Background colors (page, sections, cards, headers)
   - Text colors (headings, body text, labels, links)
   - Border colors (dividers, cards, buttons, inputs)
   - Button colors (background, text, hover states)
   - Accent colors (badges, highlights, icons)
3. TYPOGRAPHY: Font families, sizes, weights, styles, text alignment, line heights, letter spacing
4. SPACING: Exact margins, padding, gaps between elements (in pixels or rem)
5. COMPONENTS: Every UI element with their styling:
   - Buttons (size, padding, border-radius, shadows)
   - Cards (backgrounds, borders, shadows, spacing)
   - Forms (input styles, labels, focus states)
   - Tables (borders, cell padding, header styles)
   - Images (sizes, borders, shadows)
   - Icons and badges
6. DIMENSIONS: Exact widths, heights, sizes of all elements
7. POSITIONING: Layout method (flexbox, grid, positioning)
8. VISUAL EFFECTS:
   - Box shadows (spread, blur, color, opacity)
   - Border radius values
   - Gradients (direction, colors, stops)
   - Hover/focus effects
   - Transitions and animations
9. EXACT CONTENT: All visible text, headings, labels, data, numbers, icons
10. STRUCTURE: Complete hierarchy from top to bottom
11. BORDERS: Style, width, and color for all bordered elements

Extract EXACT color codes from the design. Be extremely precise with all styling details.`

// SystemInstruction is the fixed persona for the generation call.
const SystemInstruction = `You are an expert front-end developer specializing in pixel-perfect HTML/CSS recreation. When given a design description, you recreate it EXACTLY with a 600px width container - matching colors (backgrounds, text, borders), layout, spacing, typography, borders, shadows, and all visual elements precisely. You extract and apply EXACT hex color codes from the design analysis. You meticulously apply border styles (width, style, color, radius) to all matching elements. You ensure background colors are applied to page, sections, cards, buttons, and all containers as specified. You NEVER include image files or <img> tags, only recreate designs using HTML/CSS. You add descriptive alt attributes to icon placeholders and decorative elements. You output ONLY clean HTML code with inline CSS, no explanations. The main container MUST always be max-width: 600px with margin: 0 auto for centering.`

// MailerInstruction is substituted for the user text when the "start"
// shortcut fires: email-client-safe markup, table layout, spacer cells
// for spacing, line-height based buttons.
const MailerInstruction = `Generate responsive HTML code for mailer only with inline css don't include tags (h, p, span, div) also don't add margin or padding for space instead of add blank td with height except button for button add line-height, read properties and structure from json and for reference use image`

const (
	jsonSectionHeader   = "=== JSON DATA TO DISPLAY ===\n\n"
	designSectionHeader = "=== DESIGN REFERENCE (RECREATE EXACTLY) ===\n\n"
	criticalHeader      = "\n=== CRITICAL INSTRUCTIONS ===\n\n"
)

const withImageRequirements = `YOUR TASK: Recreate the design from the analysis EXACTLY as described.

REQUIREMENTS:
1. Container width MUST be exactly 600px
2. Center the container horizontally on the page
3. Match EXACT layout structure from the design analysis
4. Use EXACT colors from the analysis:
   - Apply exact hex codes for backgrounds, text, and borders
   - Match color intensity and opacity
   - Preserve color hierarchy and contrast
5. Border styling MUST match exactly:
   - Use exact border-width, border-style, and border-color
   - Apply borders to matching elements (cards, sections, dividers)
   - Match border-radius values precisely
6. Background colors MUST be applied correctly:
   - Page background
   - Section backgrounds
   - Card/container backgrounds
   - Button backgrounds
   - Header/footer backgrounds
7. Text colors MUST match the reference:
   - Heading colors
   - Body text colors
   - Link colors
   - Label colors
8. Recreate ALL UI components exactly as analyzed
9. Match dimensions and proportions precisely (scaled to 600px width)
10. Apply exact shadows, gradients, and visual effects
11. DO NOT include any reference images in the HTML
12. DO NOT use <img> tags - recreate design using HTML/CSS only
13. Add descriptive alt attributes to any icon placeholders or decorative elements
`

const withoutImageRequirements = `YOUR TASK: Create a professional HTML page displaying the JSON data.

REQUIREMENTS:
1. Container width MUST be exactly 600px
2. Center the container horizontally on the page
3. Professional, clean design with proper color scheme
4. Display JSON data in organized format
5. Use semantic HTML with descriptive alt text for visual elements
`

const jsonIntegrationRequirements = `14. Display JSON data in the same style/format as the reference design
15. Integrate JSON data into matching UI components (tables, cards, lists)
16. Maintain consistent color scheme for data display elements
`

const outputFormatContract = `
OUTPUT FORMAT:
- Complete HTML5 document starting with <!DOCTYPE html>
- ALL CSS must be inline in <style> tag
- Main container: max-width: 600px; margin: 0 auto;
- Must be pixel-perfect match to the reference design
- Color values must be exact (use hex codes from analysis)
- Border properties must match reference exactly
- Background colors must be applied to all matching elements
- Add appropriate alt text for decorative elements and icons
- Add padding on body for better appearance
- NO explanations, NO markdown, ONLY HTML code
- DO NOT include any <img> tags or image files

START GENERATING THE HTML NOW:`
